package converter

import (
	dto "github.com/FPFAVILA/raspadinhabet/internal/api/dto/payment"
	"github.com/FPFAVILA/raspadinhabet/internal/model"
)

func ToCreatePixResponse(charge model.PixCharge) dto.CreatePixResponse {
	return dto.CreatePixResponse{
		OK:           true,
		ID:           charge.ID,
		QRCode:       charge.QRCode,
		QRCodeBase64: charge.QRCodeBase64,
		Status:       charge.Status,
		Value:        charge.Value,
	}
}

func ToPixErrorResponse(pixErr *model.PixError) dto.PixErrorResponse {
	return dto.PixErrorResponse{
		OK:    false,
		Code:  pixErr.HTTPStatus,
		Error: pixErr.Message,
	}
}
