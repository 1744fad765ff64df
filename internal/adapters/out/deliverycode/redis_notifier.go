package deliverycode

import (
	"context"
	"fmt"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultStream is the stream the buyer-facing side reads issued codes from.
	DefaultStream = "delivery-codes"

	streamMaxLen = 10_000
)

// RedisNotifier appends every issued code to a redis stream as
// tracker_id, order_id, code and issued_at fields.
type RedisNotifier struct {
	client redis.Cmdable
	stream string
	now    func() time.Time
}

func NewRedisNotifier(client redis.Cmdable, stream string) *RedisNotifier {
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisNotifier{
		client: client,
		stream: stream,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (n *RedisNotifier) Send(ctx context.Context, trackerID, orderID kernel.UUID, code string) error {
	if err := trackerID.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	if code == "" {
		return errs.NewValueIsRequiredError("delivery code")
	}

	err := n.client.XAdd(ctx, &redis.XAddArgs{
		Stream: n.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]any{
			"tracker_id": trackerID.String(),
			"order_id":   orderID.String(),
			"code":       code,
			"issued_at":  n.now().Format(time.RFC3339),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publish delivery code: %w", err)
	}
	return nil
}

// SharedCodeNotifier is used with StaticStore, whose code is configured on
// both sides ahead of time. It only checks its arguments.
type SharedCodeNotifier struct{}

func (SharedCodeNotifier) Send(_ context.Context, trackerID, orderID kernel.UUID, _ string) error {
	if err := trackerID.Validate(); err != nil {
		return err
	}
	return orderID.Validate()
}
