package firebaseauth

import (
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ErrInvalidToken возвращается, когда Firebase отклонил ID токен
var ErrInvalidToken = errors.New("firebaseauth: invalid id token")

// TokenVerifier часть *auth.Client, нужная для проверки токена
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Verifier проверяет Firebase ID токены веб клиента
type Verifier struct {
	client TokenVerifier
}

// NewVerifier создает верификатор поверх Firebase Auth клиента
func NewVerifier(client TokenVerifier) *Verifier {
	return &Verifier{client: client}
}

// Verify проверяет токен; email берется из claims, если есть
func (v *Verifier) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	identity := &domain.Identity{ID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	return identity, nil
}
