package ports

import "context"

// SessionGrant is everything a successful authentication yields: the cookie
// material plus the role-specific landing path.
type SessionGrant struct {
	Token      string
	Role       string
	UserID     string
	RedirectTo string
}

// AuthService covers login and the account-recovery flows. Registration has
// its own service because of the wizard's step semantics.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*SessionGrant, error)
	ConfirmEmail(ctx context.Context, email, code string) (string, error)
	ResendConfirmationCode(ctx context.Context, email string) (int, error)
	RequestPasswordReset(ctx context.Context, email string) (int, error)
	ResetPassword(ctx context.Context, email, code, password, confirm string) error
}
