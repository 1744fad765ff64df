package queries

import (
	"errors"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/guard"
)

var ErrGetStoreProfileQueryIsNotConstructed = errors.New(
	"GetStoreProfileQuery must be created via NewGetStoreProfileQuery constructor",
)

type GetStoreProfileQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStoreProfileQuery() GetStoreProfileQuery {
	return GetStoreProfileQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStoreProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreProfileQueryIsNotConstructed)
}

// StoreProfile is the seller's store as configured for this deployment.
type StoreProfile struct {
	Name     string
	Currency string
}
