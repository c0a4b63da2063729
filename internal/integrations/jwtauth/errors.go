package jwtauth

import "errors"

var (
	// ErrInvalidToken возвращается для неподписанного, просроченного или чужого токена
	ErrInvalidToken = errors.New("jwtauth: invalid token")

	// ErrMissingSubject возвращается, когда в токене нет sub
	ErrMissingSubject = errors.New("jwtauth: token has no subject")
)
