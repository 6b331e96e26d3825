package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ojekin/dispatch/internal/pkg/constants"
	"github.com/ojekin/dispatch/internal/pkg/database"
	"github.com/ojekin/dispatch/internal/pkg/models"
)

// Ephemeral offer state outlives its usefulness quickly; every key carries
// a safety TTL so abandoned rides cannot leak coordination state.
const offerStateTTL = 2 * time.Hour

// OfferRepo implements the per-ride offer state on Redis
type OfferRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewOfferRepository creates a new offer state repository
func NewOfferRepository(cfg *models.Config, redisClient *database.RedisClient) *OfferRepo {
	return &OfferRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// SeedCandidates stores the ordered candidate queue and enters searching
func (r *OfferRepo) SeedCandidates(ctx context.Context, rideID string, driverIDs []string) error {
	queueKey := fmt.Sprintf(constants.KeyOfferQueue, rideID)
	phaseKey := fmt.Sprintf(constants.KeyOfferPhase, rideID)

	err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, queueKey)
		if len(driverIDs) > 0 {
			members := make([]interface{}, len(driverIDs))
			for i, id := range driverIDs {
				members[i] = id
			}
			pipe.RPush(ctx, queueKey, members...)
			pipe.Expire(ctx, queueKey, offerStateTTL)
		}
		pipe.Set(ctx, phaseKey, string(models.OfferPhaseSearching), offerStateTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed candidate queue: %w", err)
	}
	return nil
}

// PopCandidate removes and returns the next candidate in queue order
func (r *OfferRepo) PopCandidate(ctx context.Context, rideID string) (string, bool, error) {
	queueKey := fmt.Sprintf(constants.KeyOfferQueue, rideID)
	driverID, err := r.redisClient.LPop(ctx, queueKey)
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to pop candidate: %w", err)
	}
	return driverID, true, nil
}

// GetPhase returns the ride's coordination phase. An absent key reads as an
// empty phase: the ride has no active coordinator.
func (r *OfferRepo) GetPhase(ctx context.Context, rideID string) (models.OfferPhase, error) {
	phaseKey := fmt.Sprintf(constants.KeyOfferPhase, rideID)
	val, err := r.redisClient.Get(ctx, phaseKey)
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get offer phase: %w", err)
	}
	return models.OfferPhase(val), nil
}

// SetPhase moves the ride to a new coordination phase
func (r *OfferRepo) SetPhase(ctx context.Context, rideID string, phase models.OfferPhase) error {
	phaseKey := fmt.Sprintf(constants.KeyOfferPhase, rideID)
	if err := r.redisClient.Set(ctx, phaseKey, string(phase), offerStateTTL); err != nil {
		return fmt.Errorf("failed to set offer phase: %w", err)
	}
	return nil
}

// SetCurrentOffer records the outstanding offer and returns its generation
func (r *OfferRepo) SetCurrentOffer(ctx context.Context, rideID, driverID string, expiresAt time.Time) (int64, error) {
	genKey := fmt.Sprintf(constants.KeyOfferGen, rideID)
	gen, err := r.redisClient.Incr(ctx, genKey)
	if err != nil {
		return 0, fmt.Errorf("failed to increment offer generation: %w", err)
	}

	currentKey := fmt.Sprintf(constants.KeyOfferCurrent, rideID)
	err = r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, currentKey, map[string]interface{}{
			constants.FieldDriverID:   driverID,
			constants.FieldGeneration: gen,
			constants.FieldExpiresAt:  expiresAt.Unix(),
		})
		pipe.Expire(ctx, currentKey, offerStateTTL)
		pipe.Expire(ctx, genKey, offerStateTTL)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to set current offer: %w", err)
	}
	return gen, nil
}

// GetCurrentOffer returns the outstanding offer, or nil when none exists
func (r *OfferRepo) GetCurrentOffer(ctx context.Context, rideID string) (*models.CurrentOffer, error) {
	currentKey := fmt.Sprintf(constants.KeyOfferCurrent, rideID)
	fields, err := r.redisClient.HGetAll(ctx, currentKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get current offer: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	gen, _ := strconv.ParseInt(fields[constants.FieldGeneration], 10, 64)
	expiresUnix, _ := strconv.ParseInt(fields[constants.FieldExpiresAt], 10, 64)

	return &models.CurrentOffer{
		DriverID:   fields[constants.FieldDriverID],
		Generation: gen,
		ExpiresAt:  time.Unix(expiresUnix, 0),
	}, nil
}

// clearOfferScript deletes the current-offer hash only when it still
// carries the expected driver and generation, returning 1 on delete.
var clearOfferScript = redis.NewScript(`
if redis.call("HGET", KEYS[1], ARGV[1]) == ARGV[3]
   and redis.call("HGET", KEYS[1], ARGV[2]) == ARGV[4] then
	redis.call("DEL", KEYS[1])
	return 1
end
return 0`)

// ClearCurrentOffer removes the outstanding offer only when it still
// belongs to driverID at generation gen. The compare and the delete run as
// one server-side script: a timeout and an explicit reject racing on the
// same offer get exactly one winner, so only one caller advances the loop.
func (r *OfferRepo) ClearCurrentOffer(ctx context.Context, rideID, driverID string, gen int64) (bool, error) {
	currentKey := fmt.Sprintf(constants.KeyOfferCurrent, rideID)
	res, err := r.redisClient.RunScript(ctx, clearOfferScript,
		[]string{currentKey},
		constants.FieldDriverID, constants.FieldGeneration,
		driverID, strconv.FormatInt(gen, 10))
	if err != nil {
		return false, fmt.Errorf("failed to clear current offer: %w", err)
	}
	cleared, _ := res.(int64)
	return cleared == 1, nil
}

// AddRejected marks a driver as already tried for this ride
func (r *OfferRepo) AddRejected(ctx context.Context, rideID, driverID string) error {
	rejectedKey := fmt.Sprintf(constants.KeyOfferRejected, rideID)
	if err := r.redisClient.SAdd(ctx, rejectedKey, driverID); err != nil {
		return fmt.Errorf("failed to add rejected driver: %w", err)
	}
	return r.redisClient.Expire(ctx, rejectedKey, offerStateTTL)
}

// IsRejected reports whether the driver already declined or timed out
func (r *OfferRepo) IsRejected(ctx context.Context, rideID, driverID string) (bool, error) {
	rejectedKey := fmt.Sprintf(constants.KeyOfferRejected, rideID)
	return r.redisClient.SIsMember(ctx, rejectedKey, driverID)
}

// ClearOfferState destroys all ephemeral coordination state for the ride
func (r *OfferRepo) ClearOfferState(ctx context.Context, rideID string) error {
	return r.redisClient.Delete(ctx,
		fmt.Sprintf(constants.KeyOfferPhase, rideID),
		fmt.Sprintf(constants.KeyOfferQueue, rideID),
		fmt.Sprintf(constants.KeyOfferCurrent, rideID),
		fmt.Sprintf(constants.KeyOfferGen, rideID),
		fmt.Sprintf(constants.KeyOfferRejected, rideID),
	)
}
