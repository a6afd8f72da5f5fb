package payment

import (
	"errors"
	"net/http"

	dto "github.com/FPFAVILA/raspadinhabet/internal/api/dto/payment"
	"github.com/FPFAVILA/raspadinhabet/internal/converter"
	"github.com/FPFAVILA/raspadinhabet/internal/model"
	"github.com/FPFAVILA/raspadinhabet/internal/service"
	"github.com/FPFAVILA/raspadinhabet/pkg/req"
	"github.com/FPFAVILA/raspadinhabet/pkg/resp"
)

type HandlerDeps struct {
	Serv service.PaymentService
}

type Handler struct {
	serv service.PaymentService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// CreatePix - создает PIX-платеж и возвращает QR-код для оплаты.
// Зачисление на баланс произойдет позже, после подтверждения платежа
func (h *Handler) CreatePix(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreatePixRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	charge, err := h.serv.CreatePixCharge(r.Context(), payload.Value)
	if err != nil {
		var pixErr *model.PixError
		if errors.As(err, &pixErr) {
			resp.WriteJSONResponse(w, pixErr.HTTPStatus, converter.ToPixErrorResponse(pixErr))
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCreatePixResponse(*charge))
}
