package scratch_stats_repo

import (
	"log"
	"sync"

	"github.com/FPFAVILA/raspadinhabet/internal/model"
	"github.com/FPFAVILA/raspadinhabet/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	// Периодичность вывода сводки в лог (каждые N раундов)
	logEveryRounds = 25
)

// StatsRepo - агрегаты по раундам в памяти процесса.
// Обновляется из сервиса после каждого раунда и расчета
type StatsRepo struct {
	mu    sync.Mutex
	stats model.ScratchStats
}

func NewScratchStatsRepository() repository.ScratchStatsRepository {
	return &StatsRepo{
		stats: model.ScratchStats{
			TotalCost:   decimal.Zero,
			TotalPayout: decimal.Zero,
		},
	}
}

// RecordRound - учитывает начатый раунд и его стоимость
func (r *StatsRepo) RecordRound(cost decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.TotalRounds++
	r.stats.TotalCost = r.stats.TotalCost.Add(cost)

	if r.stats.TotalRounds%logEveryRounds == 0 {
		log.Printf("[scratch stats] rounds=%d wins=%d cost=%s payout=%s",
			r.stats.TotalRounds, r.stats.TotalWins,
			r.stats.TotalCost.StringFixed(2), r.stats.TotalPayout.StringFixed(2))
	}
}

// RecordPayout - учитывает рассчитанный выигрыш
func (r *StatsRepo) RecordPayout(payout decimal.Decimal, iphone bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.TotalWins++
	r.stats.TotalPayout = r.stats.TotalPayout.Add(payout)
	if iphone {
		r.stats.IphonesAwarded++
	}
}

// Snapshot - копия текущих агрегатов
func (r *StatsRepo) Snapshot() model.ScratchStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.stats
}
