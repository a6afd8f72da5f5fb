package service

import (
	"context"

	"github.com/FPFAVILA/raspadinhabet/internal/model"

	"github.com/shopspring/decimal"
)

type ScratchService interface {
	// Play - начать раунд: списывает стоимость карты и возвращает
	// карту с уже решенным исходом
	Play(ctx context.Context) (*model.PlayResult, error)
	// Settle - рассчитать раскрытую карту по ее исходу
	Settle(ctx context.Context, cardID string) (*model.SettleResult, error)
	// Deposit - безусловное пополнение баланса (подтвержденный платеж,
	// конвертация вещевого приза в баланс)
	Deposit(ctx context.Context, amount decimal.Decimal) (*model.Data, error)
	CheckData(ctx context.Context) (*model.Data, error)
	Stats() model.ScratchStats
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type PaymentService interface {
	CreatePixCharge(ctx context.Context, amountCents int) (*model.PixCharge, error)
}

// TrackingService - события конверсии (fire-and-forget).
// Ошибки отправки глотаются и логируются, наружу не выходят
type TrackingService interface {
	Track(event string, value decimal.Decimal)
}
