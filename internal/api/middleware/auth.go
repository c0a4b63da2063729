package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const (
	// UserIDHeader заголовок с ID пользователя (режим header, за API gateway)
	UserIDHeader = "X-User-ID"

	msgUnauthorized = "требуется авторизация"
	msgInvalidToken = "недействительный токен"
)

type identityKey struct{}

// TokenVerifier проверяет bearer токен и возвращает идентичность
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// WithIdentity кладет идентичность в контекст
func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity достает идентичность из контекста
func GetIdentity(ctx context.Context) (*domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*domain.Identity)
	return identity, ok && identity != nil
}

// IdentityProvider отдает сервисам идентичность текущего запроса
type IdentityProvider struct{}

// CurrentIdentity возвращает идентичность из контекста или nil
func (IdentityProvider) CurrentIdentity(ctx context.Context) *domain.Identity {
	identity, _ := GetIdentity(ctx)
	return identity
}

// HeaderIdentity берет идентичность из X-User-ID, если заголовок есть
func HeaderIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if userID != "" {
			r = r.WithContext(WithIdentity(r.Context(), &domain.Identity{ID: userID}))
		}
		next.ServeHTTP(w, r)
	})
}

// BearerIdentity проверяет Authorization: Bearer <token>, если заголовок есть.
// Без заголовка запрос идет дальше анонимным; с плохим токеном получает 401.
func BearerIdentity(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				logger.Warn("%s %s - malformed Authorization header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			identity, err := verifier.Verify(r.Context(), strings.TrimSpace(token))
			if err != nil {
				logger.Warn("%s %s - token rejected: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// Auth пропускает только запросы с идентичностью
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetIdentity(r.Context()); !ok {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
