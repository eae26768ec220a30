package room

import (
	"context"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"holdem-engine/pkg/ai"
	"holdem-engine/pkg/history"
	"holdem-engine/pkg/holdem"
	"holdem-engine/pkg/holdem/action"
)

type scriptedProvider struct {
	lock      sync.Mutex
	decisions []*ai.Decision
	asked     []string
}

func (p *scriptedProvider) Decide(_ context.Context, _ *holdem.State, playerID string) (*ai.Decision, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.asked = append(p.asked, playerID)
	if len(p.decisions) == 0 {
		return &ai.Decision{Action: action.Check}, nil
	}

	decision := p.decisions[0]
	p.decisions = p.decisions[1:]
	return decision, nil
}

type memoryRecorder struct {
	lock    sync.Mutex
	games   []string
	records []history.Record
}

func (r *memoryRecorder) CreateGame(_ context.Context, id string, _, _ int, _ []*holdem.Player) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.games = append(r.games, id)
	return nil
}

func (r *memoryRecorder) RecordAction(_ context.Context, _ string, record history.Record) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.records = append(r.records, record)
	return nil
}

func (r *memoryRecorder) actionLabels() []string {
	r.lock.Lock()
	defer r.lock.Unlock()

	labels := make([]string, len(r.records))
	for i, record := range r.records {
		labels[i] = record.Action
	}

	return labels
}

func testSeats() []*holdem.Player {
	return []*holdem.Player{
		{ID: "user", Name: "User", Stack: 1000},
		{ID: "ai-1", Name: "Alex", Stack: 1000, AI: true},
		{ID: "ai-2", Name: "Jordan", Stack: 1000, AI: true},
	}
}

func testDealer(provider ai.Provider, recorder Recorder) *Dealer {
	opts := holdem.DefaultOptions()
	opts.Seed = 1

	return NewDealer(provider, recorder, logrus.StandardLogger(), opts)
}

func TestDealer_fullHand(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	provider := &scriptedProvider{decisions: []*ai.Decision{
		{Action: action.Call, Reason: "priced in"},
	}}
	recorder := &memoryRecorder{}
	dealer := testDealer(provider, recorder)

	_, err := dealer.HumanAction(ctx, "user", action.Call, 0)
	a.Equal(ErrGameNotStarted, err)

	a.NoError(dealer.StartGame(ctx, testSeats()))
	a.NotEmpty(dealer.GameID())
	a.Equal([]string{dealer.GameID()}, recorder.games)

	// the human is first to act, so only the blinds happened so far
	state := dealer.State()
	a.Equal(holdem.PhasePreFlop, state.Phase)
	a.Equal("user", state.CurrentPlayer().ID)
	a.Equal([]string{"Small Blind (10)", "Big Blind (20)"}, recorder.actionLabels())

	// the user's call lets both AI seats play through to the next human turn
	state, err = dealer.HumanAction(ctx, "user", action.Call, 0)
	a.NoError(err)
	a.Equal(holdem.PhasePreFlop, state.Phase)

	state = dealer.State()
	a.Equal(holdem.PhaseFlop, state.Phase)
	a.Equal("user", state.CurrentPlayer().ID)
	a.Equal([]string{"ai-1", "ai-1", "ai-2"}, provider.asked)

	// checking down the remaining streets reaches showdown
	for _, phase := range []holdem.Phase{holdem.PhaseTurn, holdem.PhaseRiver, holdem.PhaseShowdown} {
		_, err = dealer.HumanAction(ctx, "user", action.Check, 0)
		a.NoError(err)
		a.Equal(phase, dealer.State().Phase)
	}

	state = dealer.State()
	a.True(state.Finished)
	a.NotNil(state.Winner)
	a.Equal(60, state.Winner.Winnings)

	total := 0
	for _, p := range state.Players {
		total += p.Stack
	}
	a.Equal(3000, total)

	// 2 blinds + 2 pre-flop actions + 3 per post-flop street
	a.Len(recorder.records, 13)
	a.Equal("pre-flop", recorder.records[2].Phase)
	a.Equal("priced in", recorder.records[3].Reason)
	a.Equal("flop", recorder.records[4].Phase)
}

func TestDealer_foldsToHuman(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	provider := &scriptedProvider{decisions: []*ai.Decision{
		{Action: action.Fold, Reason: "too rich"},
		{Action: action.Fold, Reason: "same"},
	}}
	recorder := &memoryRecorder{}
	dealer := testDealer(provider, recorder)

	a.NoError(dealer.StartGame(ctx, testSeats()))

	_, err := dealer.HumanAction(ctx, "user", action.Raise, 100)
	a.NoError(err)

	state := dealer.State()
	a.True(state.Finished)
	a.Equal("user", state.Winner.PlayerID)
	a.Equal("Last player standing", state.Winner.Description)
	a.Equal(130, state.Winner.Winnings)
	a.Equal(1030, state.PlayerByID("user").Stack)

	labels := recorder.actionLabels()
	a.Equal([]string{"Small Blind (10)", "Big Blind (20)", "Raised to 100", "Folded", "Folded"}, labels)

	// the raise is the only action that moved chips
	a.Equal(100, recorder.records[2].Amount)
	a.Equal(0, recorder.records[3].Amount)
	a.Equal(0, recorder.records[4].Amount)

	// the button moves and the AI seats play until the human's next turn
	a.NoError(dealer.NextHand(ctx))
	next := dealer.State()
	a.False(next.Finished)
	a.Equal(1, next.DealerIndex)
	a.Equal(holdem.PhaseFlop, next.Phase)
	a.Equal("user", next.CurrentPlayer().ID)
}

func TestDealer_nextHandGuards(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	dealer := testDealer(&scriptedProvider{}, nil)
	a.Equal(ErrGameNotStarted, dealer.NextHand(ctx))

	a.NoError(dealer.StartGame(ctx, testSeats()))
	a.Equal(ErrHandInProgress, dealer.NextHand(ctx))
}

type failingProvider struct{}

func (failingProvider) Decide(context.Context, *holdem.State, string) (*ai.Decision, error) {
	return nil, assert.AnError
}

func TestDealer_providerFailurePlaysPassively(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	dealer := testDealer(failingProvider{}, nil)
	a.NoError(dealer.StartGame(ctx, testSeats()))

	_, err := dealer.HumanAction(ctx, "user", action.Call, 0)
	a.NoError(err)

	// both AI seats fell back to passive play instead of stalling the hand
	state := dealer.State()
	a.Equal(holdem.PhaseFlop, state.Phase)
	a.Equal("user", state.CurrentPlayer().ID)
	a.False(state.PlayerByID("ai-1").Folded)
	a.False(state.PlayerByID("ai-2").Folded)
}

type blockingProvider struct {
	started chan struct{}
	release chan struct{}
	asked   int
	lock    sync.Mutex
}

func (p *blockingProvider) Decide(context.Context, *holdem.State, string) (*ai.Decision, error) {
	p.lock.Lock()
	p.asked++
	first := p.asked == 1
	p.lock.Unlock()

	if first {
		close(p.started)
		<-p.release
	}

	return &ai.Decision{Action: action.AllIn}, nil
}

func TestDealer_staleDecisionDiscarded(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	provider := &blockingProvider{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	recorder := &memoryRecorder{}
	dealer := testDealer(provider, recorder)

	// seat the AI first so StartGame blocks on the provider
	seats := []*holdem.Player{
		{ID: "ai-1", Name: "Alex", Stack: 1000, AI: true},
		{ID: "user", Name: "User", Stack: 1000},
		{ID: "ai-2", Name: "Jordan", Stack: 1000, AI: true},
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, dealer.StartGame(ctx, seats))
	}()

	<-provider.started
	dealer.EndGame()
	close(provider.release)
	wg.Wait()

	// the all-in never applied; only the blinds were recorded
	a.Nil(dealer.State())
	a.Empty(dealer.GameID())
	a.Equal([]string{"Small Blind (10)", "Big Blind (20)"}, recorder.actionLabels())
	a.Equal(1, provider.asked)
}
