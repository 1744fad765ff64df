package deliverycode

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "delivery-code:"

	// CodeLength is the number of digits in an issued code.
	CodeLength = 4

	// DefaultTTL is used when NewRedisStore gets a non-positive TTL.
	DefaultTTL = 24 * time.Hour
)

// RedisStore keeps one code per tracker under delivery-code:<trackerID>.
type RedisStore struct {
	client   redis.Cmdable
	ttl      time.Duration
	generate func() (string, error)
}

// NewRedisClient opens a client for addr. Connection errors surface on the
// first command.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		client:   client,
		ttl:      ttl,
		generate: randomCode,
	}
}

// Issue replaces any previous code of the tracker with a fresh one.
func (s *RedisStore) Issue(ctx context.Context, trackerID kernel.UUID) (string, error) {
	if err := trackerID.Validate(); err != nil {
		return "", err
	}

	code, err := s.generate()
	if err != nil {
		return "", fmt.Errorf("generate delivery code: %w", err)
	}

	if err = s.client.Set(ctx, key(trackerID), code, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store delivery code: %w", err)
	}

	return code, nil
}

// Expected returns "" when no code was issued or it has expired.
func (s *RedisStore) Expected(ctx context.Context, trackerID kernel.UUID) (string, error) {
	if err := trackerID.Validate(); err != nil {
		return "", err
	}

	code, err := s.client.Get(ctx, key(trackerID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read delivery code: %w", err)
	}

	return code, nil
}

// Consume deletes the tracker's code. Deleting a missing code is not an error.
func (s *RedisStore) Consume(ctx context.Context, trackerID kernel.UUID) error {
	if err := trackerID.Validate(); err != nil {
		return err
	}

	if err := s.client.Del(ctx, key(trackerID)).Err(); err != nil {
		return fmt.Errorf("delete delivery code: %w", err)
	}
	return nil
}

func key(trackerID kernel.UUID) string {
	return keyPrefix + trackerID.String()
}

var codeSpace = big.NewInt(10_000)

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", CodeLength, n.Int64()), nil
}
