package auth

import (
	"log"
	"net/http"
	"time"

	dto "github.com/FPFAVILA/raspadinhabet/internal/api/dto/auth"
	"github.com/FPFAVILA/raspadinhabet/internal/converter"
	"github.com/FPFAVILA/raspadinhabet/internal/service"
	"github.com/FPFAVILA/raspadinhabet/pkg/req"
	"github.com/FPFAVILA/raspadinhabet/pkg/resp"
)

const (
	sessionIDCookie    = "session_id"
	refreshTokenCookie = "refresh_token"
	cookieTTL          = 30 * 24 * time.Hour
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Register создаёт пользователя, открывает сессию
// и возвращает access_token и session_id через cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	data, err := h.serv.Register(
		r.Context(),
		converter.RegisterRequestToUserModel(&requestBody),
	)
	if err != nil {
		log.Println("Register error:", err)
		http.Error(w, "register failed", http.StatusConflict)
		return
	}

	setSessionIDCookie(w, data.SessionID)
	setRefreshTokenCookie(w, data.RefreshToken)

	resp.WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"access_token": data.AccessToken,
	})
}

// Login создаёт сессию и возвращает access_token и session_id через cookies
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	data, err := h.serv.Login(
		r.Context(),
		requestBody.Login,
		requestBody.Password,
	)
	if err != nil {
		log.Println("Login error:", err)
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}

	setSessionIDCookie(w, data.SessionID)
	setRefreshTokenCookie(w, data.RefreshToken)

	resp.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"access_token": data.AccessToken,
	})
}

// Refresh выдает новый access_token по refresh токену из cookies
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionID, err := r.Cookie(sessionIDCookie)
	if err != nil {
		http.Error(w, "session cookie missing", http.StatusUnauthorized)
		return
	}

	refreshToken, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		http.Error(w, "refresh cookie missing", http.StatusUnauthorized)
		return
	}

	newAccessToken, err := h.serv.Refresh(r.Context(), sessionID.Value, refreshToken.Value)
	if err != nil {
		log.Println("Refresh error:", err)
		http.Error(w, "refresh failed", http.StatusUnauthorized)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"access_token": newAccessToken,
	})
}

// Logout закрывает сессию и гасит cookies
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, err := r.Cookie(sessionIDCookie)
	if err != nil {
		http.Error(w, "session cookie missing", http.StatusUnauthorized)
		return
	}

	if err := h.serv.Logout(r.Context(), sessionID.Value); err != nil {
		log.Println("Logout error:", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	clearCookie(w, sessionIDCookie)
	clearCookie(w, refreshTokenCookie)

	w.WriteHeader(http.StatusNoContent)
}

func setSessionIDCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionIDCookie,
		Value:    sessionID,
		Path:     "/",
		Expires:  time.Now().Add(cookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func setRefreshTokenCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		Expires:  time.Now().Add(cookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
