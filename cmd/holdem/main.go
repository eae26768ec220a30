package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"holdem-engine/internal/config"
	"holdem-engine/internal/rng"
	"holdem-engine/internal/util"
	"holdem-engine/pkg/ai"
	"holdem-engine/pkg/db"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/holdem"
	"holdem-engine/pkg/holdem/action"
	"holdem-engine/pkg/room"
)

const humanID = "user"

var name = flag.String("name", "You", "your display name")
var seed = flag.Int64("seed", 0, "deal with a fixed seed (0 for random)")
var noDB = flag.Bool("no-db", false, "do not record the game in the database")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	ctx := context.Background()

	dealer := room.NewDealer(buildProvider(cfg), buildRecorder(cfg), logrus.StandardLogger(), holdem.Options{
		SmallBlind: cfg.Game.SmallBlind,
		BigBlind:   cfg.Game.BigBlind,
		Seed:       *seed,
	})

	if err := dealer.StartGame(ctx, buildSeats(cfg)); err != nil {
		logrus.WithError(err).Fatal("could not start the game")
	}

	runTable(ctx, dealer)
}

func buildProvider(cfg config.Config) ai.Provider {
	if cfg.LLM.APIKey == "" {
		logrus.Info("no API key configured; the table plays rule-based opponents")
		return ai.NewRules(rng.Crypto{})
	}

	provider, err := ai.NewLLM(ai.LLMOptions{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
	}, logrus.StandardLogger())
	if err != nil {
		logrus.WithError(err).Fatal("could not build the model provider")
	}

	return provider
}

func buildRecorder(cfg config.Config) room.Recorder {
	if *noDB || cfg.PGDSN == "" {
		return nil
	}

	db.Migrate()
	return room.DatabaseRecorder{}
}

func buildSeats(cfg config.Config) []*holdem.Player {
	seats := []*holdem.Player{
		{ID: humanID, Name: *name, Stack: cfg.Game.StartingChips},
	}

	for i, aiName := range util.RandomAINames(rng.Crypto{}, cfg.Game.AIPlayers) {
		seats = append(seats, &holdem.Player{
			ID:    fmt.Sprintf("ai-%d", i+1),
			Name:  aiName,
			Stack: cfg.Game.StartingChips,
			AI:    true,
		})
	}

	return seats
}

func runTable(ctx context.Context, dealer *room.Dealer) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		state := dealer.State()
		if state == nil {
			return
		}

		render(state)

		if state.Finished {
			fmt.Print("[enter] next hand, (q)uit: ")
			if !scanner.Scan() || strings.TrimSpace(scanner.Text()) == "q" {
				return
			}

			if err := dealer.NextHand(ctx); err != nil {
				if errors.Is(err, room.ErrGameOver) {
					fmt.Println("Not enough players with chips. Thanks for playing!")
					return
				}

				fmt.Println(err)
			}

			continue
		}

		fmt.Print("(f)old, (c)heck/(c)all, bet N, raise N, all-in, (q)uit > ")
		if !scanner.Scan() {
			return
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if input == "q" || input == "quit" {
			return
		}

		act, amount, err := parseCommand(input, state)
		if err != nil {
			fmt.Println(err)
			continue
		}

		if _, err := dealer.HumanAction(ctx, humanID, act, amount); err != nil {
			fmt.Println(err)
		}
	}
}

// parseCommand turns user input like "raise 120" into an action. The shortcut
// "c" means check when there is nothing to call and call otherwise.
func parseCommand(input string, state *holdem.State) (action.Action, int, error) {
	fields := strings.Fields(strings.ToLower(input))

	word := fields[0]
	if word == "c" {
		p := state.PlayerByID(humanID)
		if p != nil && p.Contribution < state.CurrentBet {
			word = "call"
		} else {
			word = "check"
		}
	} else if word == "f" {
		word = "fold"
	}

	act, err := action.FromString(word)
	if err != nil {
		return "", 0, err
	}

	var amount int
	if act == action.Bet || act == action.Raise {
		if len(fields) < 2 {
			return "", 0, fmt.Errorf("%s needs an amount", act)
		}

		amount, err = strconv.Atoi(fields[1])
		if err != nil {
			return "", 0, fmt.Errorf("bad amount: %s", fields[1])
		}
	}

	return act, amount, nil
}

func render(state *holdem.State) {
	fmt.Printf("\n--- %s --- pot %d", strings.ToUpper(state.Phase.String()), state.Pot)
	if state.CurrentBet > 0 {
		fmt.Printf(", bet %d", state.CurrentBet)
	}
	fmt.Println()

	if len(state.Community) > 0 {
		fmt.Printf("Board: %s\n", displayCards(state.Community))
	}

	current := state.CurrentPlayer()
	for i, p := range state.Players {
		marker := " "
		if current != nil && p.ID == current.ID {
			marker = "*"
		}

		seat := ""
		if i == state.DealerIndex {
			seat = " (button)"
		}

		cards := "[hidden]"
		if p.ID == humanID || state.Finished && !p.Folded {
			cards = displayCards(p.HoleCards)
		}
		if p.Folded {
			cards = "folded"
		}

		last := ""
		if p.LastAction != "" {
			last = " - " + p.LastAction
		}

		fmt.Printf("%s %-10s%s %5d chips  %s%s\n", marker, p.Name, seat, p.Stack, cards, last)
	}

	if state.Winner != nil {
		winner := state.PlayerByID(state.Winner.PlayerID)
		fmt.Printf("\n%s wins %d (%s)\n", winner.Name, state.Winner.Winnings, state.Winner.Description)
		if state.Winner.Hand != nil {
			fmt.Printf("Best hand: %s\n", displayCards(state.Winner.Hand.BestHand))
		}
	}
}

func displayCards(hand deck.Hand) string {
	if len(hand) == 0 {
		return "-"
	}

	names := make([]string, len(hand))
	for i, card := range hand {
		names[i] = card.String()
	}

	return strings.Join(names, " ")
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
