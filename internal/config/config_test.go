package config

import (
	"github.com/stretchr/testify/assert"
	"holdem-engine/internal/util"
	"os"
	"testing"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_LLM_MODEL", "gpt-4o-mini")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal("postgres://localhost:5432/holdem?sslmode=disable", cfg.PGDSN)
	a.Equal("https://llm.internal/v1", cfg.LLM.BaseURL)
	a.Equal("gpt-4o-mini", cfg.LLM.Model)
	a.Equal(25, cfg.Game.SmallBlind)

	// ensure that it's only loaded once
	_ = os.Setenv("HOLDEM_LLM_MODEL", "other-model")
	// ensure we aren't using a pointer
	cfg.LLM.Model = "bad"
	cfg = Instance()
	a.Equal("gpt-4o-mini", cfg.LLM.Model)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(10, cfg.Game.SmallBlind)
	a.Equal(20, cfg.Game.BigBlind)
	a.Equal(1000, cfg.Game.StartingChips)
	a.Equal(3, cfg.Game.AIPlayers)
	a.Equal("./sql", cfg.MigrationsPath)
	a.Equal("https://api.openai.com/v1", cfg.LLM.BaseURL)
	a.Equal("info", cfg.Log.Level)
}

func TestDefaultConfig(t *testing.T) {
	a := assert.New(t)
	cfg := DefaultConfig()
	a.Equal(10, cfg.Game.SmallBlind)
	a.Equal("info", cfg.Log.Level)
	a.Empty(cfg.PGDSN)
}
