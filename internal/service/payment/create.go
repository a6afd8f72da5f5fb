package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/FPFAVILA/raspadinhabet/internal/model"
)

// Минимальная сумма PIX-платежа в центавах
const minAmountCents = 50

// Сообщения об ошибках шлюза по HTTP-статусу
var errorMessages = map[int]string{
	http.StatusBadRequest:          "Requisição inválida. Verifique os dados enviados.",
	http.StatusUnauthorized:        "Token de autenticação inválido ou expirado.",
	http.StatusUnprocessableEntity: "O valor deve ser no mínimo R$ 0,50.",
	http.StatusTooManyRequests:     "Limite de requisições excedido. Tente novamente em instantes.",
	http.StatusInternalServerError: "Erro no servidor de pagamento. Tente novamente.",
	http.StatusBadGateway:          "Serviço de pagamento temporariamente indisponível.",
	http.StatusServiceUnavailable:  "Serviço de pagamento em manutenção.",
}

const defaultErrorMessage = "Erro ao processar pagamento. Tente novamente."

type cashInRequest struct {
	Value      int      `json:"value"`
	SplitRules []string `json:"split_rules"`
}

type cashInResponse struct {
	ID           string `json:"id"`
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
	Status       string `json:"status"`
	Value        int    `json:"value"`
	Message      string `json:"message"`
}

// CreatePixCharge - создает PIX-платеж на amountCents центавов
func (s *serv) CreatePixCharge(ctx context.Context, amountCents int) (*model.PixCharge, error) {
	if amountCents < minAmountCents {
		return nil, &model.PixError{
			HTTPStatus: http.StatusUnprocessableEntity,
			Message:    "O valor deve ser no mínimo R$ 0,50 (50 centavos).",
		}
	}

	body, err := json.Marshal(cashInRequest{
		Value:      amountCents,
		SplitRules: []string{},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &model.PixError{
			HTTPStatus: http.StatusInternalServerError,
			Message:    "Erro de conexão com serviço de pagamento.",
		}
	}
	defer resp.Body.Close()

	var parsed cashInResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil && resp.StatusCode < 400 {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, &model.PixError{
			HTTPStatus: resp.StatusCode,
			Message:    gatewayErrorMessage(resp.StatusCode, parsed.Message),
		}
	}

	return &model.PixCharge{
		ID:           parsed.ID,
		QRCode:       parsed.QRCode,
		QRCodeBase64: parsed.QRCodeBase64,
		Status:       parsed.Status,
		Value:        parsed.Value,
	}, nil
}

// gatewayErrorMessage - человекочитаемое сообщение по статусу шлюза.
// Для 422 шлюз может прислать свое сообщение, оно приоритетнее
func gatewayErrorMessage(status int, gatewayMessage string) string {
	if status == http.StatusUnprocessableEntity && gatewayMessage != "" {
		return gatewayMessage
	}
	if msg, ok := errorMessages[status]; ok {
		return msg
	}
	return defaultErrorMessage
}
