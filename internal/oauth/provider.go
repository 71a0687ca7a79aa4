// Package oauth verifies identities with an external OAuth provider.
package oauth

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("oauth client not configured")
	ErrInvalidGrant  = errors.New("invalid or expired authorization code")
	ErrNoAccessToken = errors.New("no access token")
	ErrNoEmail       = errors.New("no email in user info")
)

// Identity is what the provider vouches for.
type Identity struct {
	Email string
	Name  string
}

type Provider interface {
	AuthCodeURL(state string) (string, error)
	Exchange(ctx context.Context, code string) (Identity, error)
}

// UpstreamError is a provider failure that is not the caller's fault.
type UpstreamError struct {
	Op     string
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: upstream status %d: %s", e.Op, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}
