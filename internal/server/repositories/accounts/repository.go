// Package accounts persists Account records. Uniqueness of username and
// email is enforced by the storage layer, so concurrent registrations for
// the same identity cannot both succeed.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/accountd/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
}
