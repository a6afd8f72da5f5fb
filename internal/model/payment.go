package model

// PixCharge - созданный PIX-платеж (cashIn) во внешнем шлюзе.
// Value в центавах
type PixCharge struct {
	ID           string
	QRCode       string
	QRCodeBase64 string
	Status       string
	Value        int
}

// PixError - структурированная ошибка платежного шлюза
type PixError struct {
	HTTPStatus int
	Message    string
}

func (e *PixError) Error() string {
	return e.Message
}
