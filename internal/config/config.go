package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// ScriptedRound - одна строка скриптованного расписания выплат.
// Outcome: "lose" | "money" | "iphone"
type ScriptedRound struct {
	Round   int
	Outcome string
	Amount  decimal.Decimal
	Chance  int
}

type ScratchConfig interface {
	CardCost() decimal.Decimal
	WelcomeBonus() decimal.Decimal
	IphoneValue() decimal.Decimal
	WinProbability() float64
	RandomPrizes() []decimal.Decimal
	ChanceMin() int
	ChanceMax() int
	ScriptedRounds() []ScriptedRound
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type PixConfig interface {
	Token() string
	APIURL() string
}

type TrackingConfig interface {
	Enabled() bool
	PixelID() string
	Endpoint() string
}
