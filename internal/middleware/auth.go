package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/FPFAVILA/raspadinhabet/internal/config"
	"github.com/FPFAVILA/raspadinhabet/pkg/token"
)

type ctxKey int

const userIDKey ctxKey = iota

// Auth - проверяет access токен из заголовка Authorization
// и кладет ID пользователя в контекст запроса
func Auth(jwtCfg config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifyToken(
				strings.TrimPrefix(authHeader, "Bearer "),
				jwtCfg.AccessTokenSecretKey(),
			)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			userID, err := strconv.Atoi(claims.ID)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// WithUserID - используется в тестах и внутренних вызовах
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
