package payment

type CreatePixRequest struct {
	Value int `json:"value"` // Сумма в центавах, минимум 50
}

type CreatePixResponse struct {
	OK           bool   `json:"ok"`
	ID           string `json:"id"`
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
	Status       string `json:"status"`
	Value        int    `json:"value"`
}

type PixErrorResponse struct {
	OK    bool   `json:"ok"`
	Code  int    `json:"code"`
	Error string `json:"error"`
}
