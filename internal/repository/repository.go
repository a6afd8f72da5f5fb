package repository

import (
	"context"

	"github.com/FPFAVILA/raspadinhabet/internal/model"

	"github.com/shopspring/decimal"
)

// ScratchRepository - персистентное состояние игры и выданные карты.
// Состояние читается и пишется только целиком (read-modify-write)
type ScratchRepository interface {
	// GetState возвращает found=false, если записи еще нет (новая сессия)
	GetState(ctx context.Context, userID int) (state *model.ScratchState, found bool, err error)
	SaveState(ctx context.Context, userID int, state *model.ScratchState) error

	CreateCard(ctx context.Context, card *model.Card) error
	GetCard(ctx context.Context, cardID string) (*model.Card, error)
	MarkCardSettled(ctx context.Context, cardID string) error

	// Одноразовый маркер "приветственный бонус уже выдан".
	// Проверяется только когда основной записи состояния нет
	WelcomeBonusGranted(ctx context.Context, userID int) (bool, error)
	MarkWelcomeBonusGranted(ctx context.Context, userID int) error
}

// ScratchStatsRepository - агрегированная статистика по раундам (в памяти)
type ScratchStatsRepository interface {
	RecordRound(cost decimal.Decimal)
	RecordPayout(payout decimal.Decimal, iphone bool)
	Snapshot() model.ScratchStats
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}
