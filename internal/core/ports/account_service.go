package ports

import "context"

// LoginResult is what a successful login hands back to the transport layer.
type LoginResult struct {
	Balance int64
	// Token is empty when token issuing is disabled.
	Token string
}

type AccountService interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	UpdateBalance(ctx context.Context, username string, amount int64, isAdd bool) (int64, error)
	GetBalance(ctx context.Context, username string) (int64, error)
}

// LoginLimiter throttles repeated failed logins per username.
type LoginLimiter interface {
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
