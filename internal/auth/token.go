// Package auth supplies API tokens to the transport layer.
package auth

import (
	"context"
)

// TokenProvider yields the token sent in the Authorization header. The
// service uses long-lived static API tokens, but the indirection keeps the
// transport layer testable and leaves room for rotating providers.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenProvider provides a fixed token.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider for a fixed token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// Token implements TokenProvider.
func (p *StaticTokenProvider) Token(ctx context.Context) (string, error) {
	return p.token, nil
}
