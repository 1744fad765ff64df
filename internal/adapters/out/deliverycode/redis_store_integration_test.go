package deliverycode_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/adapters/out/deliverycode"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

var fourDigits = regexp.MustCompile(`^[0-9]{4}$`)

type RedisStoreIntegrationTestSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *goredis.Client
}

func (suite *RedisStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	suite.Require().NoError(err)
	suite.container = container

	uri, err := container.ConnectionString(ctx)
	suite.Require().NoError(err)

	opts, err := goredis.ParseURL(uri)
	suite.Require().NoError(err)

	suite.client = deliverycode.NewRedisClient(opts.Addr, opts.Password, opts.DB)
	suite.Require().NoError(suite.client.Ping(ctx).Err())
}

func (suite *RedisStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(context.Background()).Err())
}

func (suite *RedisStoreIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RedisStoreIntegrationTestSuite) TestIssue_ThenExpected() {
	ctx := context.Background()
	store := deliverycode.NewRedisStore(suite.client, time.Hour)
	id := kernel.NewUUID()

	code, err := store.Issue(ctx, id)
	suite.Require().NoError(err)
	suite.Regexp(fourDigits, code)

	expected, err := store.Expected(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(code, expected)

	ttl, err := suite.client.TTL(ctx, "delivery-code:"+id.String()).Result()
	suite.Require().NoError(err)
	suite.Greater(ttl, time.Duration(0))
	suite.LessOrEqual(ttl, time.Hour)
}

func (suite *RedisStoreIntegrationTestSuite) TestExpected_NothingIssued_ReturnsEmpty() {
	store := deliverycode.NewRedisStore(suite.client, time.Hour)

	expected, err := store.Expected(context.Background(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(expected)
}

func (suite *RedisStoreIntegrationTestSuite) TestConsume_CodeCannotBeReused() {
	ctx := context.Background()
	store := deliverycode.NewRedisStore(suite.client, time.Hour)
	id := kernel.NewUUID()

	_, err := store.Issue(ctx, id)
	suite.Require().NoError(err)
	suite.Require().NoError(store.Consume(ctx, id))

	expected, err := store.Expected(ctx, id)
	suite.Require().NoError(err)
	suite.Empty(expected)

	suite.Require().NoError(store.Consume(ctx, id), "consuming twice is not an error")
}

func (suite *RedisStoreIntegrationTestSuite) TestIssue_ReplacesPreviousCode() {
	ctx := context.Background()
	store := deliverycode.NewRedisStore(suite.client, time.Hour)
	id := kernel.NewUUID()

	var last string
	for range 5 {
		code, err := store.Issue(ctx, id)
		suite.Require().NoError(err)
		last = code
	}

	expected, err := store.Expected(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(last, expected)
}

func (suite *RedisStoreIntegrationTestSuite) TestExpected_AfterTTL_ReturnsEmpty() {
	ctx := context.Background()
	store := deliverycode.NewRedisStore(suite.client, time.Second)
	id := kernel.NewUUID()

	_, err := store.Issue(ctx, id)
	suite.Require().NoError(err)

	suite.Eventually(func() bool {
		expected, expErr := store.Expected(ctx, id)
		return expErr == nil && expected == ""
	}, 5*time.Second, 100*time.Millisecond)
}

func (suite *RedisStoreIntegrationTestSuite) TestCodesAreScopedPerTracker() {
	ctx := context.Background()
	store := deliverycode.NewRedisStore(suite.client, time.Hour)
	first, second := kernel.NewUUID(), kernel.NewUUID()

	_, err := store.Issue(ctx, first)
	suite.Require().NoError(err)

	expected, err := store.Expected(ctx, second)
	suite.Require().NoError(err)
	suite.Empty(expected)
}

func (suite *RedisStoreIntegrationTestSuite) TestIssuedCodeReachesStream() {
	ctx := context.Background()
	store := deliverycode.NewRedisStore(suite.client, time.Hour)
	notifier := deliverycode.NewRedisNotifier(suite.client, "")
	trackerID, orderID := kernel.NewUUID(), kernel.NewUUID()

	code, err := store.Issue(ctx, trackerID)
	suite.Require().NoError(err)
	suite.Require().NoError(notifier.Send(ctx, trackerID, orderID, code))

	messages, err := suite.client.XRange(ctx, deliverycode.DefaultStream, "-", "+").Result()
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.Equal(trackerID.String(), messages[0].Values["tracker_id"])
	suite.Equal(orderID.String(), messages[0].Values["order_id"])
	suite.Equal(code, messages[0].Values["code"])
	suite.NotEmpty(messages[0].Values["issued_at"])

	expected, err := store.Expected(ctx, trackerID)
	suite.Require().NoError(err)
	suite.Equal(expected, messages[0].Values["code"])
}

func (suite *RedisStoreIntegrationTestSuite) TestSend_RejectsEmptyCode() {
	notifier := deliverycode.NewRedisNotifier(suite.client, "")

	err := notifier.Send(context.Background(), kernel.NewUUID(), kernel.NewUUID(), "")
	suite.ErrorIs(err, errs.ErrValueIsRequired)

	length, err := suite.client.XLen(context.Background(), deliverycode.DefaultStream).Result()
	suite.Require().NoError(err)
	suite.Zero(length)
}

func TestRedisStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreIntegrationTestSuite))
}
