package scratch

import (
	"github.com/FPFAVILA/raspadinhabet/internal/config"
	"github.com/FPFAVILA/raspadinhabet/internal/model"

	"github.com/shopspring/decimal"
)

// scriptedEntry - заранее решенный исход для конкретного раунда
type scriptedEntry struct {
	decision model.Decision
	chance   int
}

// schedule - расписание выплат: для раунда либо есть скриптованная
// запись, либо раунд разыгрывается случайно с вероятностью winProb.
// Выбор не зависит от порядка записей и определен для любого раунда >= 1
type schedule struct {
	scripted  map[int]scriptedEntry
	winProb   float64
	prizes    []decimal.Decimal
	chanceMin int
	chanceMax int
}

func newSchedule(cfg config.ScratchConfig) *schedule {
	s := &schedule{
		scripted:  make(map[int]scriptedEntry),
		winProb:   cfg.WinProbability(),
		prizes:    cfg.RandomPrizes(),
		chanceMin: cfg.ChanceMin(),
		chanceMax: cfg.ChanceMax(),
	}

	for _, sr := range cfg.ScriptedRounds() {
		entry := scriptedEntry{chance: sr.Chance}
		switch sr.Outcome {
		case "money":
			entry.decision = model.Decision{
				ShouldWin:   true,
				PrizeKind:   model.PrizeMoney,
				PrizeAmount: sr.Amount,
			}
		case "iphone":
			entry.decision = model.Decision{
				ShouldWin:   true,
				PrizeKind:   model.PrizeIphone,
				PrizeAmount: decimal.Zero,
			}
		default:
			entry.decision = model.Decision{
				ShouldWin:   false,
				PrizeKind:   model.PrizeNone,
				PrizeAmount: decimal.Zero,
			}
		}
		s.scripted[sr.Round] = entry
	}

	return s
}

// Decide - решение по раунду. Скриптованные раунды детерминированы,
// остальные разыгрываются через rng
func (s *schedule) Decide(round int, rng Rand) model.Decision {
	if entry, ok := s.scripted[round]; ok {
		return entry.decision
	}
	return s.DecideCurrencyOnly(rng)
}

// DecideCurrencyOnly - случайный денежный режим. Вещевой приз отсюда
// выпасть не может, им управляет только скрипт
func (s *schedule) DecideCurrencyOnly(rng Rand) model.Decision {
	if rng.Float64() < s.winProb {
		return model.Decision{
			ShouldWin:   true,
			PrizeKind:   model.PrizeMoney,
			PrizeAmount: s.prizes[rng.Intn(len(s.prizes))],
		}
	}
	return model.Decision{
		ShouldWin:   false,
		PrizeKind:   model.PrizeNone,
		PrizeAmount: decimal.Zero,
	}
}

// CosmeticChance - показываемый игроку "шанс выигрыша" в процентах.
// Считается отдельно от Decide и с реальным исходом не связан:
// перед скриптованным проигрышем может показываться высокий шанс
func (s *schedule) CosmeticChance(round int, rng Rand) int {
	if entry, ok := s.scripted[round]; ok {
		return entry.chance
	}
	return s.chanceMin + rng.Intn(s.chanceMax-s.chanceMin+1)
}
