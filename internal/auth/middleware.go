package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// Authenticator resolves a bearer token to the id of its owner.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKey)
	id, ok := v.(string)
	return id, ok
}

func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

func RequireAuth(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				deny(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))

			uid, err := a.Authenticate(r.Context(), token)
			if errors.Is(err, ErrUnauthenticated) {
				deny(w, http.StatusUnauthorized, "Invalid token.")
				return
			}
			if err != nil {
				log.Printf("auth: %v", err)
				deny(w, http.StatusInternalServerError, "Server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), uid)))
		})
	}
}

// deny writes the {"message": ...} body the API uses for errors.
func deny(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
