package interfaces

import (
	"context"

	domaintypes "kembang/internal/domain/types"
)

// AccountService logs the parent in and out and keeps credentials local.
type AccountService interface {
	Login(ctx context.Context, passphrase, email, password string) (domaintypes.User, error)
	Register(ctx context.Context, passphrase string, req domaintypes.RegisterRequest) (domaintypes.User, error)
	Logout(ctx context.Context, passphrase string) error
	Whoami(ctx context.Context, passphrase string) (domaintypes.User, error)
	Refresh(ctx context.Context, passphrase string) error
	Credentials(passphrase string) (domaintypes.Credentials, error)
}
