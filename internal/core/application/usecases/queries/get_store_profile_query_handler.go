package queries

import (
	"context"
	"strings"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/errs"
)

// GetStoreProfileQueryHandler serves the store profile it was built with.
type GetStoreProfileQueryHandler struct {
	profile StoreProfile
}

// NewGetStoreProfileQueryHandler requires a name and a 3-letter currency code.
func NewGetStoreProfileQueryHandler(profile StoreProfile) (GetStoreProfileQueryHandler, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Currency = strings.ToUpper(strings.TrimSpace(profile.Currency))

	if profile.Name == "" {
		return GetStoreProfileQueryHandler{}, errs.NewValueIsRequiredError("store name")
	}
	if len(profile.Currency) != 3 {
		return GetStoreProfileQueryHandler{}, errs.NewValueIsInvalidError("store currency")
	}

	return GetStoreProfileQueryHandler{profile: profile}, nil
}

func (h GetStoreProfileQueryHandler) Handle(_ context.Context, query GetStoreProfileQuery) (StoreProfile, error) {
	if err := query.Validate(); err != nil {
		return StoreProfile{}, err
	}
	return h.profile, nil
}
