package scratch

import (
	"context"
	"errors"
	"math/rand"

	"github.com/FPFAVILA/raspadinhabet/internal/config"
	"github.com/FPFAVILA/raspadinhabet/internal/model"
	"github.com/FPFAVILA/raspadinhabet/internal/repository/scratch_repo"
	"github.com/FPFAVILA/raspadinhabet/internal/repository/scratch_stats_repo"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// testCfg - конфиг как в config.yaml
type testCfg struct{}

func (testCfg) CardCost() decimal.Decimal     { return dec("4.90") }
func (testCfg) WelcomeBonus() decimal.Decimal { return dec("9.80") }
func (testCfg) IphoneValue() decimal.Decimal  { return dec("4899.00") }
func (testCfg) WinProbability() float64       { return 0.15 }
func (testCfg) RandomPrizes() []decimal.Decimal {
	return []decimal.Decimal{dec("5.00"), dec("10.00"), dec("20.00"), dec("50.00")}
}
func (testCfg) ChanceMin() int { return 25 }
func (testCfg) ChanceMax() int { return 60 }
func (testCfg) ScriptedRounds() []config.ScriptedRound {
	return []config.ScriptedRound{
		{Round: 1, Outcome: "lose", Chance: 35},
		{Round: 2, Outcome: "money", Amount: dec("20.00"), Chance: 85},
		{Round: 3, Outcome: "lose", Chance: 70},
		{Round: 4, Outcome: "lose", Chance: 30},
		{Round: 5, Outcome: "money", Amount: dec("30.00"), Chance: 80},
		{Round: 6, Outcome: "lose", Chance: 25},
		{Round: 7, Outcome: "iphone", Chance: 95},
	}
}

// memRepo - ScratchRepository в памяти
type memRepo struct {
	state    map[int]*model.ScratchState
	cards    map[string]*model.Card
	bonus    map[int]bool
	failSave bool
}

func newMemRepo() *memRepo {
	return &memRepo{
		state: make(map[int]*model.ScratchState),
		cards: make(map[string]*model.Card),
		bonus: make(map[int]bool),
	}
}

var errStorageFault = errors.New("storage fault")

func (r *memRepo) GetState(_ context.Context, userID int) (*model.ScratchState, bool, error) {
	st, ok := r.state[userID]
	if !ok {
		return nil, false, nil
	}
	cp := *st
	return &cp, true, nil
}

func (r *memRepo) SaveState(_ context.Context, userID int, state *model.ScratchState) error {
	if r.failSave {
		return errStorageFault
	}
	cp := *state
	r.state[userID] = &cp
	return nil
}

func (r *memRepo) CreateCard(_ context.Context, card *model.Card) error {
	if r.failSave {
		return errStorageFault
	}
	cp := *card
	r.cards[card.ID] = &cp
	return nil
}

func (r *memRepo) GetCard(_ context.Context, cardID string) (*model.Card, error) {
	card, ok := r.cards[cardID]
	if !ok {
		return nil, scratch_repo.ErrCardNotFound
	}
	cp := *card
	return &cp, nil
}

func (r *memRepo) MarkCardSettled(_ context.Context, cardID string) error {
	card, ok := r.cards[cardID]
	if !ok {
		return scratch_repo.ErrCardNotFound
	}
	card.Settled = true
	return nil
}

func (r *memRepo) WelcomeBonusGranted(_ context.Context, userID int) (bool, error) {
	return r.bonus[userID], nil
}

func (r *memRepo) MarkWelcomeBonusGranted(_ context.Context, userID int) error {
	r.bonus[userID] = true
	return nil
}

// txMock - транзакционность в юнит-тестах не проверяется,
// просто выполняем функцию
type txMock struct{}

func (txMock) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (txMock) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type trackerStub struct{}

func (trackerStub) Track(string, decimal.Decimal) {}

func newTestServ(seed int64) (*serv, *memRepo) {
	repo := newMemRepo()
	cfg := testCfg{}
	return &serv{
		cfg:       cfg,
		schedule:  newSchedule(cfg),
		repo:      repo,
		statsRepo: scratch_stats_repo.NewScratchStatsRepository(),
		tracker:   trackerStub{},
		txManager: txMock{},
		rng:       rand.New(rand.NewSource(seed)),
	}, repo
}
