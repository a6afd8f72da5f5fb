package env

import (
	"errors"
	"fmt"
	"os"

	"github.com/FPFAVILA/raspadinhabet/internal/config"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type scratchYAML struct {
	Scratch struct {
		CardCost       string   `yaml:"card_cost"`
		WelcomeBonus   string   `yaml:"welcome_bonus"`
		IphoneValue    string   `yaml:"iphone_value"`
		WinProbability float64  `yaml:"win_probability"`
		RandomPrizes   []string `yaml:"random_prizes"`
		ChanceMin      int      `yaml:"chance_min"`
		ChanceMax      int      `yaml:"chance_max"`
		ScriptedRounds []struct {
			Round   int    `yaml:"round"`
			Outcome string `yaml:"outcome"`
			Amount  string `yaml:"amount"`
			Chance  int    `yaml:"chance"`
		} `yaml:"scripted_rounds"`
	} `yaml:"scratch"`
}

type scratchConfig struct {
	cardCost       decimal.Decimal
	welcomeBonus   decimal.Decimal
	iphoneValue    decimal.Decimal
	winProbability float64
	randomPrizes   []decimal.Decimal
	chanceMin      int
	chanceMax      int
	scriptedRounds []config.ScriptedRound
}

// NewScratchConfigFromYAML - читает игровой конфиг (стоимость карты,
// расписание выплат, параметры случайной фазы) из yaml файла
func NewScratchConfigFromYAML(path string) (config.ScratchConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scratch config: %w", err)
	}

	var parsed scratchYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse scratch config: %w", err)
	}

	src := parsed.Scratch

	cfg := &scratchConfig{
		winProbability: src.WinProbability,
		chanceMin:      src.ChanceMin,
		chanceMax:      src.ChanceMax,
	}

	cfg.cardCost, err = decimal.NewFromString(src.CardCost)
	if err != nil {
		return nil, fmt.Errorf("invalid card_cost: %w", err)
	}
	if !cfg.cardCost.IsPositive() {
		return nil, errors.New("card_cost must be positive")
	}

	cfg.welcomeBonus, err = decimal.NewFromString(src.WelcomeBonus)
	if err != nil {
		return nil, fmt.Errorf("invalid welcome_bonus: %w", err)
	}
	if cfg.welcomeBonus.IsNegative() {
		return nil, errors.New("welcome_bonus must not be negative")
	}

	cfg.iphoneValue, err = decimal.NewFromString(src.IphoneValue)
	if err != nil {
		return nil, fmt.Errorf("invalid iphone_value: %w", err)
	}

	if src.WinProbability < 0 || src.WinProbability > 1 {
		return nil, errors.New("win_probability must be in [0,1]")
	}

	if len(src.RandomPrizes) == 0 {
		return nil, errors.New("random_prizes must not be empty")
	}
	for _, p := range src.RandomPrizes {
		amount, err := decimal.NewFromString(p)
		if err != nil {
			return nil, fmt.Errorf("invalid random prize %q: %w", p, err)
		}
		cfg.randomPrizes = append(cfg.randomPrizes, amount)
	}

	if src.ChanceMin < 0 || src.ChanceMax > 100 || src.ChanceMin > src.ChanceMax {
		return nil, errors.New("invalid chance bounds")
	}

	seen := make(map[int]struct{})
	for _, sr := range src.ScriptedRounds {
		if sr.Round < 1 {
			return nil, fmt.Errorf("scripted round %d: round numbers start from 1", sr.Round)
		}
		if _, ok := seen[sr.Round]; ok {
			return nil, fmt.Errorf("scripted round %d defined twice", sr.Round)
		}
		seen[sr.Round] = struct{}{}

		if sr.Chance < 0 || sr.Chance > 100 {
			return nil, fmt.Errorf("scripted round %d: chance must be in [0,100]", sr.Round)
		}

		round := config.ScriptedRound{
			Round:   sr.Round,
			Outcome: sr.Outcome,
			Chance:  sr.Chance,
		}

		switch sr.Outcome {
		case "lose", "iphone":
			round.Amount = decimal.Zero
		case "money":
			round.Amount, err = decimal.NewFromString(sr.Amount)
			if err != nil {
				return nil, fmt.Errorf("scripted round %d: invalid amount: %w", sr.Round, err)
			}
			if !round.Amount.IsPositive() {
				return nil, fmt.Errorf("scripted round %d: amount must be positive", sr.Round)
			}
		default:
			return nil, fmt.Errorf("scripted round %d: unknown outcome %q", sr.Round, sr.Outcome)
		}

		cfg.scriptedRounds = append(cfg.scriptedRounds, round)
	}

	return cfg, nil
}

func (cfg *scratchConfig) CardCost() decimal.Decimal {
	return cfg.cardCost
}

func (cfg *scratchConfig) WelcomeBonus() decimal.Decimal {
	return cfg.welcomeBonus
}

func (cfg *scratchConfig) IphoneValue() decimal.Decimal {
	return cfg.iphoneValue
}

func (cfg *scratchConfig) WinProbability() float64 {
	return cfg.winProbability
}

func (cfg *scratchConfig) RandomPrizes() []decimal.Decimal {
	return cfg.randomPrizes
}

func (cfg *scratchConfig) ChanceMin() int {
	return cfg.chanceMin
}

func (cfg *scratchConfig) ChanceMax() int {
	return cfg.chanceMax
}

func (cfg *scratchConfig) ScriptedRounds() []config.ScriptedRound {
	return cfg.scriptedRounds
}
