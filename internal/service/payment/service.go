package payment

import (
	"net/http"
	"time"

	"github.com/FPFAVILA/raspadinhabet/internal/config"
	"github.com/FPFAVILA/raspadinhabet/internal/service"
)

const requestTimeout = 15 * time.Second

type serv struct {
	cfg    config.PixConfig
	client *http.Client
}

// NewPaymentService - клиент PIX cashIn внешнего шлюза (PushinPay).
// Движок его не вызывает: пополнение приходит позже отдельным Deposit
func NewPaymentService(cfg config.PixConfig) service.PaymentService {
	return &serv{
		cfg:    cfg,
		client: &http.Client{Timeout: requestTimeout},
	}
}
