// Package deliverycode provides the stores behind ports.DeliveryCodeStore
// and the notifiers behind ports.DeliveryCodeNotifier.
//
// StaticStore expects one configured code for every tracker and never
// changes it. RedisStore issues a random code per tracker that expires and
// can be used once; RedisNotifier appends each issued code to a stream the
// buyer-facing side consumes.
package deliverycode

import (
	"context"
	"strings"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/errs"
)

// DefaultStaticCode is the code expected when none is configured.
const DefaultStaticCode = "1234"

// StaticStore always expects the same code. Issue and Consume do nothing.
type StaticStore struct {
	code string
}

func NewStaticStore(code string) (*StaticStore, error) {
	if code == "" {
		code = DefaultStaticCode
	}
	if strings.TrimSpace(code) != code {
		return nil, errs.NewValueIsInvalidError("static delivery code")
	}
	return &StaticStore{code: code}, nil
}

func (s *StaticStore) Issue(_ context.Context, trackerID kernel.UUID) (string, error) {
	if err := trackerID.Validate(); err != nil {
		return "", err
	}
	return s.code, nil
}

func (s *StaticStore) Expected(_ context.Context, trackerID kernel.UUID) (string, error) {
	if err := trackerID.Validate(); err != nil {
		return "", err
	}
	return s.code, nil
}

func (s *StaticStore) Consume(_ context.Context, trackerID kernel.UUID) error {
	return trackerID.Validate()
}
