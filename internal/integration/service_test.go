package integration

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fittrack/internal/logger"
	"fittrack/internal/membership"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

type MockRepo struct{ mock.Mock }
type MockGate struct{ mock.Mock }
type MockResolver struct{ mock.Mock }

func (m *MockRepo) Upsert(ctx context.Context, conn *Connection) (*Connection, error) {
	args := m.Called(ctx, conn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Connection), args.Error(1)
}

func (m *MockRepo) GetByProvider(ctx context.Context, userID int, provider string) (*Connection, error) {
	args := m.Called(ctx, userID, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Connection), args.Error(1)
}

func (m *MockGate) AllowGymCard(ctx context.Context, userID int) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockGate) AllowGymAnalytics(ctx context.Context, userID int) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockGate) AllowFitnessSync(ctx context.Context, userID int) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockResolver) Resolve(ctx context.Context, userID int) (*membership.Entitlement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Entitlement), args.Error(1)
}

func entitlementFor(tier membership.Tier) *membership.Entitlement {
	return &membership.Entitlement{Tier: tier, Entitlements: membership.CatalogFor(tier)}
}

func TestConnectGym_IssuesCard(t *testing.T) {
	repo := new(MockRepo)
	gate := new(MockGate)
	svc := NewService(repo, gate, new(MockResolver))
	ctx := context.Background()

	gate.On("AllowGymCard", ctx, 1).Return(nil)
	repo.On("Upsert", ctx, mock.MatchedBy(func(conn *Connection) bool {
		return conn.UserID == 1 &&
			conn.Provider == ProviderPlanetFitness &&
			strings.HasPrefix(conn.CardNumber, "PF-") &&
			len(conn.CardNumber) == len("PF-")+12
	})).Return(&Connection{ID: 1, UserID: 1, Provider: ProviderPlanetFitness, CardNumber: "PF-AAAABBBBCCCC"}, nil)

	card, err := svc.ConnectGym(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "PF-AAAABBBBCCCC", card.CardNumber)
	assert.Equal(t, "Planet Fitness", card.GymName)
	repo.AssertExpectations(t)
}

func TestConnectGym_FreeTierDenied(t *testing.T) {
	repo := new(MockRepo)
	gate := new(MockGate)
	svc := NewService(repo, gate, new(MockResolver))
	ctx := context.Background()

	gate.On("AllowGymCard", ctx, 1).Return(&membership.Denial{
		Feature: "gym_card",
		Reason:  membership.ReasonUnavailable,
		Message: "the partner gym card requires a premium membership or above",
	})

	_, err := svc.ConnectGym(ctx, 1)
	var denial *membership.Denial
	require.ErrorAs(t, err, &denial)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestGymCard_NotConnected(t *testing.T) {
	repo := new(MockRepo)
	gate := new(MockGate)
	svc := NewService(repo, gate, new(MockResolver))
	ctx := context.Background()

	gate.On("AllowGymCard", ctx, 1).Return(nil)
	repo.On("GetByProvider", ctx, 1, ProviderPlanetFitness).Return(nil, ErrNotConnected)

	_, err := svc.GetGymCard(ctx, 1)
	require.ErrorIs(t, err, ErrNotConnected)
}

func TestGymAnalytics_StableForConnection(t *testing.T) {
	repo := new(MockRepo)
	gate := new(MockGate)
	svc := NewService(repo, gate, new(MockResolver))
	ctx := context.Background()

	gate.On("AllowGymAnalytics", ctx, 1).Return(nil)
	repo.On("GetByProvider", ctx, 1, ProviderPlanetFitness).
		Return(&Connection{ID: 7, UserID: 1, Provider: ProviderPlanetFitness}, nil)

	first, err := svc.GetGymAnalytics(ctx, 1)
	require.NoError(t, err)
	second, err := svc.GetGymAnalytics(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first.VisitsThisMonth, 4)
	assert.NotEmpty(t, first.BusiestDay)
}

func TestSyncFitness_BasicSyncStepsOnly(t *testing.T) {
	repo := new(MockRepo)
	gate := new(MockGate)
	resolver := new(MockResolver)
	svc := NewService(repo, gate, resolver)
	ctx := context.Background()

	gate.On("AllowFitnessSync", ctx, 1).Return(nil)
	repo.On("GetByProvider", ctx, 1, ProviderAppleFitness).
		Return(&Connection{ID: 2, UserID: 1, Provider: ProviderAppleFitness}, nil)
	resolver.On("Resolve", ctx, 1).Return(entitlementFor(membership.TierPremium), nil)

	result, err := svc.SyncFitness(ctx, 1)
	require.NoError(t, err)
	assert.False(t, result.FullSync)
	require.Len(t, result.Samples, 7)
	for _, sample := range result.Samples {
		assert.Positive(t, sample.Steps)
		assert.Zero(t, sample.HeartRateAvg)
		assert.Zero(t, sample.Calories)
	}
}

func TestSyncFitness_FullSyncForPro(t *testing.T) {
	repo := new(MockRepo)
	gate := new(MockGate)
	resolver := new(MockResolver)
	svc := NewService(repo, gate, resolver)
	ctx := context.Background()

	gate.On("AllowFitnessSync", ctx, 1).Return(nil)
	repo.On("GetByProvider", ctx, 1, ProviderAppleFitness).
		Return(&Connection{ID: 2, UserID: 1, Provider: ProviderAppleFitness}, nil)
	resolver.On("Resolve", ctx, 1).Return(entitlementFor(membership.TierPro), nil)

	result, err := svc.SyncFitness(ctx, 1)
	require.NoError(t, err)
	assert.True(t, result.FullSync)
	require.Len(t, result.Samples, 7)
	for _, sample := range result.Samples {
		assert.Positive(t, sample.HeartRateAvg)
		assert.Positive(t, sample.Calories)
	}
}

func TestSyncFitness_RequiresConnection(t *testing.T) {
	repo := new(MockRepo)
	gate := new(MockGate)
	svc := NewService(repo, gate, new(MockResolver))
	ctx := context.Background()

	gate.On("AllowFitnessSync", ctx, 1).Return(nil)
	repo.On("GetByProvider", ctx, 1, ProviderAppleFitness).Return(nil, ErrNotConnected)

	_, err := svc.SyncFitness(ctx, 1)
	require.ErrorIs(t, err, ErrNotConnected)
}
