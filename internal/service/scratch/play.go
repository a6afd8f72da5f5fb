package scratch

import (
	"context"
	"errors"

	"github.com/FPFAVILA/raspadinhabet/internal/middleware"
	"github.com/FPFAVILA/raspadinhabet/internal/model"
	"github.com/FPFAVILA/raspadinhabet/internal/service/tracking"

	"github.com/shopspring/decimal"
)

// Play - начинает раунд: проверка баланса, решение исхода, генерация
// поля, списание стоимости и сохранение - одна транзакция
func (s *serv) Play(ctx context.Context) (*model.PlayResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	cost := s.cfg.CardCost()

	var res *model.PlayResult

	// Начало транзакции где выполняется процесс раунда
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.loadState(txCtx, userID)
		if err != nil {
			return err
		}

		// Гвард по балансу: раунд начинается только если хватает на карту
		if state.Balance.LessThan(cost) {
			return ErrInsufficientFunds
		}

		round := state.CardsUsed + 1

		// Айфон разыгрывается один раз на игрока. После выигрыша
		// расписание для него навсегда переводится в денежный режим
		var decision model.Decision
		if state.HasWonIphone {
			decision = s.schedule.DecideCurrencyOnly(s.rng)
		} else {
			decision = s.schedule.Decide(round, s.rng)
		}

		card := s.buildCard(userID, decision)

		// Списание стоимости карты и учет раунда
		state.Balance = normalizeBalance(state.Balance.Sub(cost))
		state.CardsUsed = round

		if err := s.repo.SaveState(txCtx, userID, state); err != nil {
			return err
		}

		if err := s.repo.CreateCard(txCtx, card); err != nil {
			return err
		}

		res = &model.PlayResult{
			Card:    card,
			Balance: state.Balance,
			Chance:  s.schedule.CosmeticChance(round, s.rng),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Обновляем статистику
	s.statsRepo.RecordRound(cost)

	s.tracker.Track(tracking.EventRoundPlayed, cost)

	return res, nil
}

// loadState - читает состояние игрока. Если записи нет - новая сессия:
// стартовый баланс определяется одноразовым маркером приветственного бонуса
func (s *serv) loadState(ctx context.Context, userID int) (*model.ScratchState, error) {
	state, found, err := s.repo.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}
	if found {
		state.Balance = state.Balance.Round(2)
		return state, nil
	}

	state = &model.ScratchState{
		Balance:      normalizeBalance(s.cfg.WelcomeBonus()),
		CardsUsed:    0,
		HasWonIphone: false,
	}

	granted, err := s.repo.WelcomeBonusGranted(ctx, userID)
	if err != nil {
		return nil, err
	}
	if granted {
		// Бонус уже выдавался раньше - стартуем с нуля
		state.Balance = decimal.Zero
		return state, nil
	}

	if err := s.repo.MarkWelcomeBonusGranted(ctx, userID); err != nil {
		return nil, err
	}

	return state, nil
}
