package scratch

import (
	"context"
	"errors"

	"github.com/FPFAVILA/raspadinhabet/internal/middleware"
	"github.com/FPFAVILA/raspadinhabet/internal/model"
	"github.com/FPFAVILA/raspadinhabet/internal/repository/scratch_repo"
	"github.com/FPFAVILA/raspadinhabet/internal/service/tracking"
)

// Settle - рассчитывает раскрытую карту. Исход берется из сохраненной
// при выдаче карты, клиентским данным движок не доверяет
func (s *serv) Settle(ctx context.Context, cardID string) (*model.SettleResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	var (
		res  *model.SettleResult
		card *model.Card
	)

	// Начало транзакции где выполняется расчет
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		card, err = s.repo.GetCard(txCtx, cardID)
		if err != nil {
			return err
		}

		// Чужая карта неотличима от несуществующей
		if card.UserID != userID {
			return scratch_repo.ErrCardNotFound
		}

		// Повторный расчет не начисляет приз второй раз
		if card.Settled {
			return ErrCardAlreadySettled
		}

		if err := s.repo.MarkCardSettled(txCtx, cardID); err != nil {
			return err
		}

		state, err := s.loadState(txCtx, userID)
		if err != nil {
			return err
		}

		if card.HasWon {
			switch card.PrizeKind {
			case model.PrizeMoney:
				// Денежный приз зачисляется на баланс
				state.Balance = normalizeBalance(state.Balance.Add(card.PrizeAmount))
			case model.PrizeIphone:
				// Вещевой приз баланс не трогает. Конвертация в баланс -
				// отдельный явный Deposit
				state.HasWonIphone = true
			}
		}

		if err := s.repo.SaveState(txCtx, userID, state); err != nil {
			return err
		}

		res = &model.SettleResult{
			Balance:      state.Balance,
			HasWonIphone: state.HasWonIphone,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if card.HasWon {
		wonIphone := card.PrizeKind == model.PrizeIphone

		// В статистике и трекинге вещевой приз учитывается
		// по его денежной оценке
		payout := card.PrizeAmount
		if wonIphone {
			payout = s.cfg.IphoneValue()
		}

		s.statsRepo.RecordPayout(payout, wonIphone)
		s.tracker.Track(tracking.EventPrizeWon, payout)
	}

	return res, nil
}
