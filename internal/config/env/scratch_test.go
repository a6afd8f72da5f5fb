package env

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validConfig = `
scratch:
  card_cost: "4.90"
  welcome_bonus: "9.80"
  iphone_value: "4899.00"
  win_probability: 0.15
  random_prizes: ["5.00", "10.00", "20.00", "50.00"]
  chance_min: 25
  chance_max: 60
  scripted_rounds:
    - { round: 1, outcome: lose, chance: 35 }
    - { round: 2, outcome: money, amount: "20.00", chance: 85 }
    - { round: 7, outcome: iphone, chance: 95 }
`

func TestNewScratchConfigFromYAML(t *testing.T) {
	cfg, err := NewScratchConfigFromYAML(writeConfig(t, validConfig))
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.CardCost().StringFixed(2); got != "4.90" {
		t.Errorf("card cost = %s", got)
	}
	if got := cfg.WelcomeBonus().StringFixed(2); got != "9.80" {
		t.Errorf("welcome bonus = %s", got)
	}
	if cfg.WinProbability() != 0.15 {
		t.Errorf("win probability = %v", cfg.WinProbability())
	}
	if len(cfg.RandomPrizes()) != 4 {
		t.Errorf("random prizes = %d, want 4", len(cfg.RandomPrizes()))
	}
	if cfg.ChanceMin() != 25 || cfg.ChanceMax() != 60 {
		t.Errorf("chance bounds = [%d, %d]", cfg.ChanceMin(), cfg.ChanceMax())
	}

	rounds := cfg.ScriptedRounds()
	if len(rounds) != 3 {
		t.Fatalf("scripted rounds = %d, want 3", len(rounds))
	}
	if rounds[1].Outcome != "money" || rounds[1].Amount.StringFixed(2) != "20.00" {
		t.Errorf("round 2 entry: %+v", rounds[1])
	}
	if rounds[2].Outcome != "iphone" || !rounds[2].Amount.IsZero() {
		t.Errorf("round 7 entry: %+v", rounds[2])
	}
}

func TestNewScratchConfigFromYAMLInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing file", ""},
		{
			"zero card cost",
			`
scratch:
  card_cost: "0"
  welcome_bonus: "9.80"
  iphone_value: "4899.00"
  win_probability: 0.15
  random_prizes: ["5.00"]
  chance_min: 25
  chance_max: 60
`,
		},
		{
			"bad probability",
			`
scratch:
  card_cost: "4.90"
  welcome_bonus: "9.80"
  iphone_value: "4899.00"
  win_probability: 1.5
  random_prizes: ["5.00"]
  chance_min: 25
  chance_max: 60
`,
		},
		{
			"duplicate scripted round",
			`
scratch:
  card_cost: "4.90"
  welcome_bonus: "9.80"
  iphone_value: "4899.00"
  win_probability: 0.15
  random_prizes: ["5.00"]
  chance_min: 25
  chance_max: 60
  scripted_rounds:
    - { round: 2, outcome: lose, chance: 35 }
    - { round: 2, outcome: lose, chance: 35 }
`,
		},
		{
			"money round without amount",
			`
scratch:
  card_cost: "4.90"
  welcome_bonus: "9.80"
  iphone_value: "4899.00"
  win_probability: 0.15
  random_prizes: ["5.00"]
  chance_min: 25
  chance_max: 60
  scripted_rounds:
    - { round: 2, outcome: money, chance: 85 }
`,
		},
		{
			"unknown outcome",
			`
scratch:
  card_cost: "4.90"
  welcome_bonus: "9.80"
  iphone_value: "4899.00"
  win_probability: 0.15
  random_prizes: ["5.00"]
  chance_min: 25
  chance_max: 60
  scripted_rounds:
    - { round: 2, outcome: jackpot, chance: 85 }
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nope.yaml")
			if tt.body != "" {
				path = writeConfig(t, tt.body)
			}
			if _, err := NewScratchConfigFromYAML(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
