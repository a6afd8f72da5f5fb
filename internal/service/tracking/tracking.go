package tracking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/FPFAVILA/raspadinhabet/internal/config"
	"github.com/FPFAVILA/raspadinhabet/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// События конверсии, имена совпадают с пиксельными
const (
	EventRegistration = "CompleteRegistration"
	EventPurchase     = "Purchase"
	EventPrizeWon     = "PrizeWon"
	EventRoundPlayed  = "RoundPlayed"
)

const sendTimeout = 5 * time.Second

type serv struct {
	cfg    config.TrackingConfig
	client *http.Client
}

func NewTrackingService(cfg config.TrackingConfig) service.TrackingService {
	return &serv{
		cfg:    cfg,
		client: &http.Client{Timeout: sendTimeout},
	}
}

// Track - отправляет событие в фоне. Трекинг не влияет на игровой
// процесс: любая ошибка отправки только логируется
func (s *serv) Track(event string, value decimal.Decimal) {
	if !s.cfg.Enabled() {
		return
	}

	go func() {
		if err := s.send(event, value); err != nil {
			logrus.WithFields(logrus.Fields{
				"event": event,
				"value": value.StringFixed(2),
				"error": err.Error(),
			}).Warn("tracking event failed")
		}
	}()
}

type eventPayload struct {
	Data []eventData `json:"data"`
}

type eventData struct {
	EventName  string     `json:"event_name"`
	EventTime  int64      `json:"event_time"`
	CustomData customData `json:"custom_data"`
}

type customData struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

func (s *serv) send(event string, value decimal.Decimal) error {
	payload := eventPayload{
		Data: []eventData{{
			EventName: event,
			EventTime: time.Now().Unix(),
			CustomData: customData{
				Currency: "BRL",
				Value:    value.StringFixed(2),
			},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s/events", s.cfg.Endpoint(), s.cfg.PixelID())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("tracking endpoint returned %d", resp.StatusCode)
	}

	return nil
}
