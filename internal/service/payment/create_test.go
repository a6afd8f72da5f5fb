package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FPFAVILA/raspadinhabet/internal/model"
)

type pixCfg struct {
	url   string
	token string
}

func (c pixCfg) APIURL() string { return c.url }
func (c pixCfg) Token() string  { return c.token }

func TestCreatePixCharge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("authorization header = %q", got)
		}

		var req cashInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Value != 500 {
			t.Errorf("value = %d, want 500", req.Value)
		}

		json.NewEncoder(w).Encode(cashInResponse{
			ID:           "charge-1",
			QRCode:       "pix-code",
			QRCodeBase64: "cGl4",
			Status:       "created",
			Value:        req.Value,
		})
	}))
	defer srv.Close()

	s := NewPaymentService(pixCfg{url: srv.URL, token: "test-token"})

	charge, err := s.CreatePixCharge(context.Background(), 500)
	if err != nil {
		t.Fatal(err)
	}
	if charge.ID != "charge-1" || charge.QRCode != "pix-code" || charge.Value != 500 {
		t.Errorf("charge = %+v", charge)
	}
}

func TestCreatePixChargeBelowMinimum(t *testing.T) {
	s := NewPaymentService(pixCfg{url: "http://unused", token: "t"})

	_, err := s.CreatePixCharge(context.Background(), 49)

	var pixErr *model.PixError
	if !errors.As(err, &pixErr) {
		t.Fatalf("err = %v, want *model.PixError", err)
	}
	if pixErr.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", pixErr.HTTPStatus)
	}
}

func TestCreatePixChargeGatewayError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			"gateway message wins on 422",
			http.StatusUnprocessableEntity,
			`{"message": "Valor acima do limite da conta."}`,
			"Valor acima do limite da conta.",
		},
		{
			"mapped message",
			http.StatusUnauthorized,
			`{}`,
			"Token de autenticação inválido ou expirado.",
		},
		{
			"unmapped status falls back",
			http.StatusTeapot,
			`{}`,
			defaultErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			s := NewPaymentService(pixCfg{url: srv.URL, token: "t"})

			_, err := s.CreatePixCharge(context.Background(), 500)

			var pixErr *model.PixError
			if !errors.As(err, &pixErr) {
				t.Fatalf("err = %v, want *model.PixError", err)
			}
			if pixErr.HTTPStatus != tt.status {
				t.Errorf("status = %d, want %d", pixErr.HTTPStatus, tt.status)
			}
			if pixErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", pixErr.Message, tt.wantMsg)
			}
		})
	}
}
