package scratch

import (
	"errors"
	"net/http"

	dto "github.com/FPFAVILA/raspadinhabet/internal/api/dto/scratch"
	"github.com/FPFAVILA/raspadinhabet/internal/converter"
	"github.com/FPFAVILA/raspadinhabet/internal/repository/scratch_repo"
	"github.com/FPFAVILA/raspadinhabet/internal/service"
	scratchServ "github.com/FPFAVILA/raspadinhabet/internal/service/scratch"
	"github.com/FPFAVILA/raspadinhabet/pkg/req"
	"github.com/FPFAVILA/raspadinhabet/pkg/resp"

	"github.com/shopspring/decimal"
)

type HandlerDeps struct {
	Serv service.ScratchService
}

type Handler struct {
	serv service.ScratchService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Play - начать раунд, вернуть карту с полем 3x3
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Play(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayResponse(*result))
}

// Settle - рассчитать раскрытую карту
func (h *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SettleRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Settle(r.Context(), payload.CardID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettleResponse(*result))
}

// Deposit - зачислить подтвержденное пополнение
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := decimal.NewFromString(payload.Amount)
	if err != nil {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}

	result, err := h.serv.Deposit(r.Context(), amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*result))
}

func (h *Handler) CheckData(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.CheckData(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*result))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

// writeServiceError - маппинг ошибок сервиса на HTTP статусы
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scratchServ.ErrInsufficientFunds):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, scratch_repo.ErrCardNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, scratchServ.ErrCardAlreadySettled):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, scratchServ.ErrNegativeAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
