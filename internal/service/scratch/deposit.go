package scratch

import (
	"context"
	"errors"

	"github.com/FPFAVILA/raspadinhabet/internal/middleware"
	"github.com/FPFAVILA/raspadinhabet/internal/model"
	"github.com/FPFAVILA/raspadinhabet/internal/service/tracking"

	"github.com/shopspring/decimal"
)

// Deposit - безусловное зачисление на баланс: подтвержденное пополнение
// или конвертация выигранного айфона в деньги
func (s *serv) Deposit(ctx context.Context, amount decimal.Decimal) (*model.Data, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	var res *model.Data

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.loadState(txCtx, userID)
		if err != nil {
			return err
		}

		state.Balance = normalizeBalance(state.Balance.Add(amount))

		if err := s.repo.SaveState(txCtx, userID, state); err != nil {
			return err
		}

		res = &model.Data{
			Balance:      state.Balance,
			CardsUsed:    state.CardsUsed,
			HasWonIphone: state.HasWonIphone,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.tracker.Track(tracking.EventPurchase, amount)

	return res, nil
}
