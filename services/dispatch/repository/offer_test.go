package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojekin/dispatch/internal/pkg/database"
	"github.com/ojekin/dispatch/internal/pkg/models"
)

func setupOfferRepo(t *testing.T) (*OfferRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := database.NewRedisClientFromConn(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return NewOfferRepository(&models.Config{}, client), mr
}

func TestSeedAndPopCandidates(t *testing.T) {
	repo, _ := setupOfferRepo(t)
	ctx := context.Background()

	err := repo.SeedCandidates(ctx, "ride-1", []string{"d1", "d2", "d3"})
	require.NoError(t, err)

	phase, err := repo.GetPhase(ctx, "ride-1")
	require.NoError(t, err)
	assert.Equal(t, models.OfferPhaseSearching, phase)

	for _, want := range []string{"d1", "d2", "d3"} {
		got, ok, err := repo.PopCandidate(ctx, "ride-1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok, err := repo.PopCandidate(ctx, "ride-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSeedCandidates_ReplacesStaleQueue(t *testing.T) {
	repo, _ := setupOfferRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SeedCandidates(ctx, "ride-1", []string{"old-1", "old-2"}))
	require.NoError(t, repo.SeedCandidates(ctx, "ride-1", []string{"new-1"}))

	got, ok, err := repo.PopCandidate(ctx, "ride-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new-1", got)

	_, ok, err = repo.PopCandidate(ctx, "ride-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCurrentOffer_GenerationIncrements(t *testing.T) {
	repo, _ := setupOfferRepo(t)
	ctx := context.Background()
	expires := time.Now().Add(15 * time.Second)

	gen1, err := repo.SetCurrentOffer(ctx, "ride-1", "d1", expires)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen1)

	gen2, err := repo.SetCurrentOffer(ctx, "ride-1", "d2", expires)
	require.NoError(t, err)
	assert.Equal(t, int64(2), gen2)

	current, err := repo.GetCurrentOffer(ctx, "ride-1")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "d2", current.DriverID)
	assert.Equal(t, int64(2), current.Generation)
	assert.WithinDuration(t, expires, current.ExpiresAt, time.Second)
}

func TestGetCurrentOffer_NoneOutstanding(t *testing.T) {
	repo, _ := setupOfferRepo(t)

	current, err := repo.GetCurrentOffer(context.Background(), "ride-1")
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestClearCurrentOffer_StaleGenerationRefused(t *testing.T) {
	repo, _ := setupOfferRepo(t)
	ctx := context.Background()
	expires := time.Now().Add(15 * time.Second)

	_, err := repo.SetCurrentOffer(ctx, "ride-1", "d1", expires)
	require.NoError(t, err)
	gen2, err := repo.SetCurrentOffer(ctx, "ride-1", "d2", expires)
	require.NoError(t, err)

	// A timeout holding generation 1 must not clear generation 2's offer
	cleared, err := repo.ClearCurrentOffer(ctx, "ride-1", "d1", 1)
	require.NoError(t, err)
	assert.False(t, cleared)

	current, err := repo.GetCurrentOffer(ctx, "ride-1")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "d2", current.DriverID)

	cleared, err = repo.ClearCurrentOffer(ctx, "ride-1", "d2", gen2)
	require.NoError(t, err)
	assert.True(t, cleared)

	current, err = repo.GetCurrentOffer(ctx, "ride-1")
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestClearCurrentOffer_SingleWinner(t *testing.T) {
	repo, _ := setupOfferRepo(t)
	ctx := context.Background()

	gen, err := repo.SetCurrentOffer(ctx, "ride-1", "d1", time.Now().Add(15*time.Second))
	require.NoError(t, err)

	// Timeout and explicit reject both hold the same driver and generation;
	// the server-side compare-and-delete admits exactly one of them
	first, err := repo.ClearCurrentOffer(ctx, "ride-1", "d1", gen)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := repo.ClearCurrentOffer(ctx, "ride-1", "d1", gen)
	require.NoError(t, err)
	assert.False(t, second)
}

func TestRejectedSet(t *testing.T) {
	repo, _ := setupOfferRepo(t)
	ctx := context.Background()

	rejected, err := repo.IsRejected(ctx, "ride-1", "d1")
	require.NoError(t, err)
	assert.False(t, rejected)

	require.NoError(t, repo.AddRejected(ctx, "ride-1", "d1"))

	rejected, err = repo.IsRejected(ctx, "ride-1", "d1")
	require.NoError(t, err)
	assert.True(t, rejected)

	rejected, err = repo.IsRejected(ctx, "ride-1", "d2")
	require.NoError(t, err)
	assert.False(t, rejected)
}

func TestClearOfferState_RemovesEverything(t *testing.T) {
	repo, mr := setupOfferRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SeedCandidates(ctx, "ride-1", []string{"d1"}))
	_, err := repo.SetCurrentOffer(ctx, "ride-1", "d1", time.Now().Add(15*time.Second))
	require.NoError(t, err)
	require.NoError(t, repo.AddRejected(ctx, "ride-1", "d0"))

	require.NoError(t, repo.ClearOfferState(ctx, "ride-1"))

	assert.Empty(t, mr.Keys())

	phase, err := repo.GetPhase(ctx, "ride-1")
	require.NoError(t, err)
	assert.Equal(t, models.OfferPhase(""), phase)
}

func TestOfferStateCarriesSafetyTTL(t *testing.T) {
	repo, mr := setupOfferRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SeedCandidates(ctx, "ride-1", []string{"d1"}))
	_, err := repo.SetCurrentOffer(ctx, "ride-1", "d1", time.Now().Add(15*time.Second))
	require.NoError(t, err)

	for _, key := range mr.Keys() {
		assert.Greater(t, mr.TTL(key), time.Duration(0), "key %s must expire", key)
	}
}
