package env

import (
	"os"

	"github.com/FPFAVILA/raspadinhabet/internal/config"
)

const (
	trackingPixelIDEnvName  = "TRACKING_PIXEL_ID"
	trackingEndpointEnvName = "TRACKING_ENDPOINT"

	defaultTrackingEndpoint = "https://graph.facebook.com/v18.0"
)

type trackingConfig struct {
	pixelID  string
	endpoint string
}

// NewTrackingConfig - трекинг опционален: без TRACKING_PIXEL_ID
// события просто не отправляются
func NewTrackingConfig() config.TrackingConfig {
	endpoint := os.Getenv(trackingEndpointEnvName)
	if len(endpoint) == 0 {
		endpoint = defaultTrackingEndpoint
	}

	return &trackingConfig{
		pixelID:  os.Getenv(trackingPixelIDEnvName),
		endpoint: endpoint,
	}
}

func (cfg *trackingConfig) Enabled() bool {
	return len(cfg.pixelID) > 0
}

func (cfg *trackingConfig) PixelID() string {
	return cfg.pixelID
}

func (cfg *trackingConfig) Endpoint() string {
	return cfg.endpoint
}
