package scratch

import (
	"errors"
	"math/rand"

	"github.com/FPFAVILA/raspadinhabet/internal/config"
	"github.com/FPFAVILA/raspadinhabet/internal/repository"
	"github.com/FPFAVILA/raspadinhabet/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrCardAlreadySettled = errors.New("card already settled")
	ErrNegativeAmount     = errors.New("amount must not be negative")
)

// Rand - источник случайности, подменяется в тестах
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// globalRand - math/rand с глобальным состоянием, безопасен для конкурентных запросов
type globalRand struct{}

func (globalRand) Intn(n int) int   { return rand.Intn(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

type serv struct {
	cfg       config.ScratchConfig
	schedule  *schedule
	repo      repository.ScratchRepository
	statsRepo repository.ScratchStatsRepository
	tracker   service.TrackingService
	txManager trm.Manager
	rng       Rand
}

// NewScratchService - движок скретч-карт 3x3
func NewScratchService(
	cfg config.ScratchConfig,
	repo repository.ScratchRepository,
	statsRepo repository.ScratchStatsRepository,
	tracker service.TrackingService,
	txManager trm.Manager,
) service.ScratchService {
	return &serv{
		cfg:       cfg,
		schedule:  newSchedule(cfg),
		repo:      repo,
		statsRepo: statsRepo,
		tracker:   tracker,
		txManager: txManager,
		rng:       globalRand{},
	}
}

// normalizeBalance - после каждой мутации баланс округляется до 2 знаков
// и не опускается ниже нуля
func normalizeBalance(balance decimal.Decimal) decimal.Decimal {
	balance = balance.Round(2)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}
