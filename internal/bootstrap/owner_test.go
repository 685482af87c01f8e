package bootstrap

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fittrack/internal/logger"
	"fittrack/internal/membership"
	"fittrack/internal/user"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, name, email, passwordHash, role string) (*user.User, error) {
	args := m.Called(ctx, name, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id int) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) Username(ctx context.Context, userID int) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

type MockMembershipRepo struct{ mock.Mock }

func (m *MockMembershipRepo) GetKeyByCode(ctx context.Context, code string) (*membership.Key, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Key), args.Error(1)
}

func (m *MockMembershipRepo) MarkKeyUsed(ctx context.Context, code string, userID int, force bool) (*membership.Key, error) {
	args := m.Called(ctx, code, userID, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Key), args.Error(1)
}

func (m *MockMembershipRepo) InsertKeys(ctx context.Context, keys []membership.Key) ([]membership.Key, error) {
	args := m.Called(ctx, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]membership.Key), args.Error(1)
}

func (m *MockMembershipRepo) SetKeyRevoked(ctx context.Context, keyID int) (bool, error) {
	args := m.Called(ctx, keyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMembershipRepo) ListKeys(ctx context.Context, limit, offset int) ([]membership.Key, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]membership.Key), args.Error(1)
}

func (m *MockMembershipRepo) GetActiveMembership(ctx context.Context, userID int) (*membership.Record, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Record), args.Error(1)
}

func (m *MockMembershipRepo) SupersedeMembership(ctx context.Context, userID int, tier membership.Tier, endDate time.Time, keyID *int) (*membership.Record, error) {
	args := m.Called(ctx, userID, tier, endDate, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Record), args.Error(1)
}

func TestEnsureOwner_CreatesAdminWithEliteGrant(t *testing.T) {
	users := new(MockUserRepo)
	memberships := new(MockMembershipRepo)
	ctx := context.Background()

	users.On("EmailExists", ctx, "owner@fittrack.dev").Return(false, nil)
	users.On("Create", ctx, "Owner", "owner@fittrack.dev", mock.AnythingOfType("string"), "admin").
		Return(&user.User{ID: 1, Email: "owner@fittrack.dev", Role: "admin"}, nil)
	memberships.On("SupersedeMembership", ctx, 1, membership.TierElite,
		mock.MatchedBy(func(end time.Time) bool {
			return end.After(time.Now().Add(90 * 365 * 24 * time.Hour))
		}), (*int)(nil)).
		Return(&membership.Record{ID: 1, UserID: 1, Tier: membership.TierElite}, nil)

	err := EnsureOwner(ctx, users, memberships, "owner@fittrack.dev", "Owner")
	require.NoError(t, err)
	users.AssertExpectations(t)
	memberships.AssertExpectations(t)
}

func TestEnsureOwner_Idempotent(t *testing.T) {
	users := new(MockUserRepo)
	memberships := new(MockMembershipRepo)
	ctx := context.Background()

	users.On("EmailExists", ctx, "owner@fittrack.dev").Return(true, nil)

	err := EnsureOwner(ctx, users, memberships, "owner@fittrack.dev", "Owner")
	require.NoError(t, err)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	memberships.AssertNotCalled(t, "SupersedeMembership",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsureOwner_SkipsWhenUnconfigured(t *testing.T) {
	users := new(MockUserRepo)

	err := EnsureOwner(context.Background(), users, new(MockMembershipRepo), "", "Owner")
	require.NoError(t, err)
	users.AssertNotCalled(t, "EmailExists", mock.Anything, mock.Anything)
}
