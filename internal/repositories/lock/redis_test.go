package lock

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/gridiron/internal/common/uuid/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockUUID *mocks.MockUUID
	mr       *miniredis.Miniredis
	client   *redis.Client
	repo     Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUUID = mocks.NewMockUUID(s.ctrl)

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient:   s.client,
		UUIDGenerator: s.mockUUID,
		RetryInterval: 5 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.ctrl.Finish()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestAcquireAndRelease() {
	ctx := context.Background()
	s.mockUUID.EXPECT().NewUUID().Return("token-1")

	out, err := s.repo.Acquire(ctx, &AcquireInput{Key: "session-1", TTL: time.Minute})
	s.Require().NoError(err)
	s.Equal("token-1", out.Token)

	held, err := s.mr.Get("lock:session-1")
	s.Require().NoError(err)
	s.Equal("token-1", held)
	s.Equal(time.Minute, s.mr.TTL("lock:session-1"))

	s.Require().NoError(s.repo.Release(ctx, &ReleaseInput{Key: "session-1", Token: "token-1"}))
	s.False(s.mr.Exists("lock:session-1"))
}

func (s *RedisRepositoryTestSuite) TestAcquireTimesOutWhileHeld() {
	s.mockUUID.EXPECT().NewUUID().Return("token-1")
	s.mockUUID.EXPECT().NewUUID().Return("token-2")

	_, err := s.repo.Acquire(context.Background(), &AcquireInput{Key: "session-1"})
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err = s.repo.Acquire(ctx, &AcquireInput{Key: "session-1"})
	s.ErrorIs(err, ErrLockTimeout)
}

func (s *RedisRepositoryTestSuite) TestAcquireWaitsForRelease() {
	s.mockUUID.EXPECT().NewUUID().Return("token-1")
	s.mockUUID.EXPECT().NewUUID().Return("token-2")

	_, err := s.repo.Acquire(context.Background(), &AcquireInput{Key: "session-1"})
	s.Require().NoError(err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = s.repo.Release(context.Background(), &ReleaseInput{Key: "session-1", Token: "token-1"})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, err := s.repo.Acquire(ctx, &AcquireInput{Key: "session-1"})
	s.Require().NoError(err)
	s.Equal("token-2", out.Token)
}

func (s *RedisRepositoryTestSuite) TestDifferentKeysDoNotContend() {
	s.mockUUID.EXPECT().NewUUID().Return("token-1")
	s.mockUUID.EXPECT().NewUUID().Return("token-2")

	_, err := s.repo.Acquire(context.Background(), &AcquireInput{Key: "session-1"})
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err = s.repo.Acquire(ctx, &AcquireInput{Key: "session-2"})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestReleaseWithWrongToken() {
	ctx := context.Background()
	s.mockUUID.EXPECT().NewUUID().Return("token-1")

	_, err := s.repo.Acquire(ctx, &AcquireInput{Key: "session-1"})
	s.Require().NoError(err)

	err = s.repo.Release(ctx, &ReleaseInput{Key: "session-1", Token: "someone-else"})
	s.ErrorIs(err, ErrLockNotHeld)
	s.True(s.mr.Exists("lock:session-1"))
}

func (s *RedisRepositoryTestSuite) TestExpiredLockCanBeTaken() {
	ctx := context.Background()
	s.mockUUID.EXPECT().NewUUID().Return("token-1")
	s.mockUUID.EXPECT().NewUUID().Return("token-2")

	_, err := s.repo.Acquire(ctx, &AcquireInput{Key: "session-1", TTL: time.Second})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Second)

	out, err := s.repo.Acquire(ctx, &AcquireInput{Key: "session-1", TTL: time.Second})
	s.Require().NoError(err)
	s.Equal("token-2", out.Token)

	err = s.repo.Release(ctx, &ReleaseInput{Key: "session-1", Token: "token-1"})
	s.ErrorIs(err, ErrLockNotHeld)
}
