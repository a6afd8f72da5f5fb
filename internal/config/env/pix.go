package env

import (
	"errors"
	"os"

	"github.com/FPFAVILA/raspadinhabet/internal/config"
)

const (
	pixTokenEnvName  = "PUSHINPAY_TOKEN"
	pixAPIURLEnvName = "PUSHINPAY_API_URL"

	defaultPixAPIURL = "https://api.pushinpay.com.br/api/pix/cashIn"
)

type pixConfig struct {
	token  string
	apiURL string
}

func NewPixConfig() (config.PixConfig, error) {
	token := os.Getenv(pixTokenEnvName)
	if len(token) == 0 {
		return nil, errors.New("pushinpay token not found")
	}

	apiURL := os.Getenv(pixAPIURLEnvName)
	if len(apiURL) == 0 {
		apiURL = defaultPixAPIURL
	}

	return &pixConfig{
		token:  token,
		apiURL: apiURL,
	}, nil
}

func (cfg *pixConfig) Token() string {
	return cfg.token
}

func (cfg *pixConfig) APIURL() string {
	return cfg.apiURL
}
