package firebaseauth

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	token *auth.Token
	err   error
}

func (f fakeClient) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return f.token, f.err
}

func TestVerifier_Verify(t *testing.T) {
	v := NewVerifier(fakeClient{token: &auth.Token{
		UID:    "uid-1",
		Claims: map[string]interface{}{"email": "ana@example.com"},
	}})

	identity, err := v.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", identity.ID)
	assert.Equal(t, "ana@example.com", identity.Email)
}

func TestVerifier_Rejected(t *testing.T) {
	v := NewVerifier(fakeClient{err: errors.New("token expired")})

	_, err := v.Verify(context.Background(), "token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
