package auth

import (
	"context"
	"strings"

	"logbook/internal/models"
)

type ctxKey string

const userKey ctxKey = "userClaims"

type Claims struct {
	Subject string
	Name    string
	Email   string
	Role    string
}

func (c Claims) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// CanApprove and CanDelete are the per-role capabilities evaluated once,
// instead of scattering role conditionals through the handlers.

func (c Claims) CanApprove() bool {
	return c.IsAdmin()
}

// CanDelete allows an admin to delete any account except their own.
func (c Claims) CanDelete(targetEmail string) bool {
	return c.IsAdmin() && !strings.EqualFold(c.Email, targetEmail)
}

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, userKey, c)
}

func FromContext(ctx context.Context) Claims {
	if v, ok := ctx.Value(userKey).(Claims); ok {
		return v
	}
	return Claims{}
}

func Subject(ctx context.Context) string {
	return FromContext(ctx).Subject
}
