package scratch_repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/FPFAVILA/raspadinhabet/internal/model"
	"github.com/FPFAVILA/raspadinhabet/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	stateTable      = "scratch_state"
	colUserID       = "user_id"
	colBalance      = "balance"
	colCardsUsed    = "cards_used"
	colHasWonIphone = "has_won_iphone"

	cardsTable     = "scratch_cards"
	colCardID      = "id"
	colCost        = "cost"
	colGrid        = "grid"
	colHasWon      = "has_won"
	colPrizeKind   = "prize_kind"
	colPrizeAmount = "prize_amount"
	colSettled     = "settled"

	bonusTable = "welcome_bonus"
)

var ErrCardNotFound = errors.New("card not found")

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewScratchRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.ScratchRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// GetState - получение состояния игры пользователя.
// Возвращает found=false, если записи нет
func (r *repo) GetState(ctx context.Context, userID int) (*model.ScratchState, bool, error) {
	// Формируем запрос
	query := sq.Select(colBalance+"::text", colCardsUsed, colHasWonIphone).
		From(stateTable).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, false, err
	}

	var (
		balanceStr string
		state      model.ScratchState
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&balanceStr, &state.CardsUsed, &state.HasWonIphone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	state.Balance, err = decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, false, fmt.Errorf("invalid balance in storage: %w", err)
	}

	return &state, true, nil
}

// SaveState - запись состояния игры целиком (upsert).
// Баланс хранится с точностью до 2 знаков
func (r *repo) SaveState(ctx context.Context, userID int, state *model.ScratchState) error {
	// Формируем запрос
	query := sq.Insert(stateTable).
		Columns(colUserID, colBalance, colCardsUsed, colHasWonIphone).
		Values(userID, state.Balance.StringFixed(2), state.CardsUsed, state.HasWonIphone).
		Suffix("ON CONFLICT (" + colUserID + ") DO UPDATE SET " +
			colBalance + " = EXCLUDED." + colBalance + ", " +
			colCardsUsed + " = EXCLUDED." + colCardsUsed + ", " +
			colHasWonIphone + " = EXCLUDED." + colHasWonIphone).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// CreateCard - сохраняет выданную карту вместе с решенным исходом
func (r *repo) CreateCard(ctx context.Context, card *model.Card) error {
	gridJSON, err := json.Marshal(card.Grid)
	if err != nil {
		return err
	}

	// Формируем запрос
	query := sq.Insert(cardsTable).
		Columns(colCardID, colUserID, colCost, colGrid, colHasWon, colPrizeKind, colPrizeAmount, colSettled).
		Values(card.ID, card.UserID, card.Cost.StringFixed(2), string(gridJSON),
			card.HasWon, string(card.PrizeKind), card.PrizeAmount.StringFixed(2), card.Settled).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetCard - получение выданной карты по ID
func (r *repo) GetCard(ctx context.Context, cardID string) (*model.Card, error) {
	// Формируем запрос
	query := sq.Select(colCardID, colUserID, colCost+"::text", colGrid, colHasWon, colPrizeKind, colPrizeAmount+"::text", colSettled).
		From(cardsTable).
		Where(sq.Eq{colCardID: cardID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		card      model.Card
		costStr   string
		amountStr string
		kindStr   string
		gridRaw   []byte
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&card.ID, &card.UserID, &costStr, &gridRaw, &card.HasWon, &kindStr, &amountStr, &card.Settled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	card.Cost, err = decimal.NewFromString(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid card cost in storage: %w", err)
	}
	card.PrizeAmount, err = decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("invalid prize amount in storage: %w", err)
	}
	card.PrizeKind = model.PrizeKind(kindStr)

	if err := json.Unmarshal(gridRaw, &card.Grid); err != nil {
		return nil, fmt.Errorf("invalid grid in storage: %w", err)
	}

	return &card, nil
}

// MarkCardSettled - помечает карту рассчитанной
func (r *repo) MarkCardSettled(ctx context.Context, cardID string) error {
	// Формируем запрос
	query := sq.Update(cardsTable).
		Set(colSettled, true).
		Where(sq.Eq{colCardID: cardID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return ErrCardNotFound
	}

	return nil
}

// WelcomeBonusGranted - был ли уже выдан приветственный бонус
func (r *repo) WelcomeBonusGranted(ctx context.Context, userID int) (bool, error) {
	// Формируем запрос
	query := sq.Select("1").
		From(bonusTable).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// MarkWelcomeBonusGranted - ставит одноразовый маркер бонуса
func (r *repo) MarkWelcomeBonusGranted(ctx context.Context, userID int) error {
	// Формируем запрос
	query := sq.Insert(bonusTable).
		Columns(colUserID).
		Values(userID).
		Suffix("ON CONFLICT (" + colUserID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
