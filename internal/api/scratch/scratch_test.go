package scratch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "github.com/FPFAVILA/raspadinhabet/internal/api/dto/scratch"
	"github.com/FPFAVILA/raspadinhabet/internal/model"
	"github.com/FPFAVILA/raspadinhabet/internal/repository/scratch_repo"
	scratchServ "github.com/FPFAVILA/raspadinhabet/internal/service/scratch"

	"github.com/shopspring/decimal"
)

// servStub - сервис с заранее заданными ответами
type servStub struct {
	playRes   *model.PlayResult
	playErr   error
	settleRes *model.SettleResult
	settleErr error
	dataRes   *model.Data
	dataErr   error
	stats     model.ScratchStats

	gotCardID string
	gotAmount decimal.Decimal
}

func (s *servStub) Play(context.Context) (*model.PlayResult, error) {
	return s.playRes, s.playErr
}

func (s *servStub) Settle(_ context.Context, cardID string) (*model.SettleResult, error) {
	s.gotCardID = cardID
	return s.settleRes, s.settleErr
}

func (s *servStub) Deposit(_ context.Context, amount decimal.Decimal) (*model.Data, error) {
	s.gotAmount = amount
	return s.dataRes, s.dataErr
}

func (s *servStub) CheckData(context.Context) (*model.Data, error) {
	return s.dataRes, s.dataErr
}

func (s *servStub) Stats() model.ScratchStats {
	return s.stats
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestHandlerPlay(t *testing.T) {
	card := &model.Card{
		ID:          "card-1",
		UserID:      1,
		Cost:        dec("4.90"),
		HasWon:      true,
		PrizeKind:   model.PrizeMoney,
		PrizeAmount: dec("20.00"),
	}
	for i := range card.Grid {
		card.Grid[i] = model.Cell{ID: i, Symbol: "💵", Position: model.Position{X: i % 3, Y: i / 3}}
	}

	stub := &servStub{playRes: &model.PlayResult{Card: card, Balance: dec("0.00"), Chance: 85}}
	h := NewHandler(HandlerDeps{Serv: stub})

	rec := httptest.NewRecorder()
	h.Play(rec, httptest.NewRequest(http.MethodPost, "/scratch/play", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got dto.PlayResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Card.ID != "card-1" || got.Card.PrizeAmount != "20.00" {
		t.Errorf("card = %+v", got.Card)
	}
	if got.Balance != "0.00" || got.Chance != 85 {
		t.Errorf("balance = %q, chance = %d", got.Balance, got.Chance)
	}
	if len(got.Card.Grid) != 9 || got.Card.Grid[4].Position.Y != 1 {
		t.Errorf("grid = %+v", got.Card.Grid)
	}
}

func TestHandlerSettle(t *testing.T) {
	stub := &servStub{settleRes: &model.SettleResult{Balance: dec("24.90")}}
	h := NewHandler(HandlerDeps{Serv: stub})

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"card_id": "card-7"}`)
	h.Settle(rec, httptest.NewRequest(http.MethodPost, "/scratch/settle", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if stub.gotCardID != "card-7" {
		t.Errorf("card id = %q", stub.gotCardID)
	}

	var got dto.SettleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Balance != "24.90" {
		t.Errorf("balance = %q", got.Balance)
	}
}

func TestHandlerDeposit(t *testing.T) {
	stub := &servStub{dataRes: &model.Data{Balance: dec("30.00"), CardsUsed: 3}}
	h := NewHandler(HandlerDeps{Serv: stub})

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"amount": "25.10"}`)
	h.Deposit(rec, httptest.NewRequest(http.MethodPost, "/scratch/deposit", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !stub.gotAmount.Equal(dec("25.10")) {
		t.Errorf("amount = %s", stub.gotAmount)
	}
}

func TestHandlerDepositBadAmount(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &servStub{}})

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"amount": "abc"}`)
	h.Deposit(rec, httptest.NewRequest(http.MethodPost, "/scratch/deposit", body))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"insufficient funds", scratchServ.ErrInsufficientFunds, http.StatusPaymentRequired},
		{"card not found", scratch_repo.ErrCardNotFound, http.StatusNotFound},
		{"already settled", scratchServ.ErrCardAlreadySettled, http.StatusConflict},
		{"negative amount", scratchServ.ErrNegativeAmount, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tt.err)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}
