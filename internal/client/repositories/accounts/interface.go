// Package accounts is the durable collection of locally registered accounts.
// It is the only source of truth for which accounts exist; it knows nothing
// about sessions.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/authshell/internal/client/models"
)

// Repository looks accounts up by normalised email and creates new ones.
//
// FindByEmail returns (nil, nil) when no account matches. Create does not
// check uniqueness; callers must check Exists first.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	Exists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, name, email, password string) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
}
