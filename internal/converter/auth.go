package converter

import (
	dto "github.com/FPFAVILA/raspadinhabet/internal/api/dto/auth"
	"github.com/FPFAVILA/raspadinhabet/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	}
}
