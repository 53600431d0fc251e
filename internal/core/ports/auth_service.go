package ports

import (
	"context"

	"github.com/notewise/notes-api/internal/core/domain"
)

// AuthResult is returned by Register and Login. Token is empty on the
// partial-success registration path, in which case TokenWarning explains why.
type AuthResult struct {
	Token        string
	TokenWarning string
	User         *domain.User
}

type AuthService interface {
	Register(ctx context.Context, name, email, plainPassword string) (*AuthResult, error)
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
}
