package scratch

import (
	"context"
	"errors"

	"github.com/FPFAVILA/raspadinhabet/internal/middleware"
	"github.com/FPFAVILA/raspadinhabet/internal/model"
)

// CheckData - текущее состояние игрока. Для новой сессии здесь же
// выдается приветственный бонус, поэтому вызов идет в транзакции
func (s *serv) CheckData(ctx context.Context) (*model.Data, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	var res *model.Data

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.loadState(txCtx, userID)
		if err != nil {
			return err
		}

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

	return res, nil
}

func (s *serv) Stats() model.ScratchStats {
	return s.statsRepo.Snapshot()
}
