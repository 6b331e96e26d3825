package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ojekin/dispatch/internal/pkg/apperrors"
	"github.com/ojekin/dispatch/internal/pkg/logger"
	"github.com/ojekin/dispatch/internal/pkg/models"
	"github.com/ojekin/dispatch/internal/pkg/observability"
	"github.com/ojekin/dispatch/services/dispatch"
)

// DispatchUC implements the sequential offer protocol. One conceptual offer
// loop runs per active ride; all cross-ride state lives in Redis (offer
// repo) and the durable store (sink), both concurrency-safe, so loops for
// different rides never block one another.
type DispatchUC struct {
	cfg        *models.Config
	offerRepo  dispatch.OfferRepo
	candidates dispatch.CandidateSource
	sink       dispatch.RideStateSink
	gw         dispatch.DispatchGW

	// afterFunc defaults to time.AfterFunc; tests inject their own to run
	// the timeout callback deterministically.
	afterFunc func(d time.Duration, f func()) *time.Timer

	mu     sync.Mutex
	timers map[string]armedLease // ride id -> outstanding lease timer
}

// armedLease ties a lease timer to the offer generation it guards, so a
// fired or cancelled timer only ever removes its own map entry.
type armedLease struct {
	timer *time.Timer
	gen   int64
}

// NewDispatchUC creates a new offer coordinator
func NewDispatchUC(
	cfg *models.Config,
	offerRepo dispatch.OfferRepo,
	candidates dispatch.CandidateSource,
	sink dispatch.RideStateSink,
	gw dispatch.DispatchGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:        cfg,
		offerRepo:  offerRepo,
		candidates: candidates,
		sink:       sink,
		gw:         gw,
		afterFunc:  time.AfterFunc,
		timers:     make(map[string]armedLease),
	}
}

func (uc *DispatchUC) offerLease() time.Duration {
	return time.Duration(uc.cfg.Dispatch.OfferLeaseSeconds) * time.Second
}

// DispatchRide seeds the candidate queue and starts the offer loop
func (uc *DispatchUC) DispatchRide(ctx context.Context, ride *models.Ride, preferredDriverID string) error {
	if ride == nil || ride.RideID == uuid.Nil {
		return apperrors.ErrInvalidRideID
	}
	rideID := ride.RideID.String()
	scope := models.Scope{Region: ride.Region, Service: ride.ServiceType}

	candidates := uc.discoverCandidates(ctx, scope, &ride.Pickup)
	if len(candidates) == 0 {
		logger.Info("No candidates for ride", logger.String("ride_id", rideID))
		return uc.finishNoDrivers(ctx, rideID)
	}

	candidates = uc.orderCandidates(ctx, scope, candidates, preferredDriverID)

	if err := uc.offerRepo.SeedCandidates(ctx, rideID, candidates); err != nil {
		return fmt.Errorf("failed to seed candidates: %w", err)
	}

	return uc.offerNext(ctx, ride)
}

// offerNext advances the loop by one candidate. It is re-entrant and safe
// to call redundantly: it no-ops unless the ride is still searching with no
// outstanding offer.
func (uc *DispatchUC) offerNext(ctx context.Context, ride *models.Ride) error {
	rideID := ride.RideID.String()

	phase, err := uc.offerRepo.GetPhase(ctx, rideID)
	if err != nil {
		return fmt.Errorf("failed to read offer phase: %w", err)
	}
	if phase != models.OfferPhaseSearching {
		return nil
	}

	current, err := uc.offerRepo.GetCurrentOffer(ctx, rideID)
	if err != nil {
		return fmt.Errorf("failed to read current offer: %w", err)
	}
	if current != nil {
		return nil
	}

	driverID, ok, err := uc.popNextCandidate(ctx, rideID)
	if err != nil {
		return err
	}
	if !ok {
		return uc.finishNoDrivers(ctx, rideID)
	}

	expiresAt := time.Now().Add(uc.offerLease())
	gen, err := uc.offerRepo.SetCurrentOffer(ctx, rideID, driverID, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to set current offer: %w", err)
	}

	if err := uc.sink.SetOffer(ctx, rideID, driverID, expiresAt); err != nil {
		if apperrors.IsStateConflict(err) {
			// The durable ride moved past the pre-offer states: someone
			// cancelled it or another path finished it. Tear down and stop.
			logger.Info("Ride no longer offerable, stopping dispatch",
				logger.String("ride_id", rideID))
			if clearErr := uc.offerRepo.ClearOfferState(ctx, rideID); clearErr != nil {
				logger.Warn("Failed to clear offer state",
					logger.String("ride_id", rideID),
					logger.Err(clearErr))
			}
			return nil
		}
		// Losing one offer's durable mirror is recoverable on the next
		// offer; proceed optimistically rather than aborting the loop.
		logger.Warn("Durable offer write failed, continuing",
			logger.String("ride_id", rideID),
			logger.String("driver_id", driverID),
			logger.Err(err))
	}

	uc.gw.NotifyJobOffer(ctx, driverID, models.JobOffer{
		RideID:      rideID,
		TripType:    ride.TripType,
		ServiceType: ride.ServiceType,
		Pickup:      ride.Pickup,
		Dropoff:     ride.Dropoff,
		DistanceKm:  ride.DistanceKm,
		DurationMin: ride.DurationMin,
		Fare:        ride.Fare,
		ExpiresAt:   expiresAt,
	})

	observability.OffersIssued.Inc()
	logger.Info("Offer issued",
		logger.String("ride_id", rideID),
		logger.String("driver_id", driverID),
		logger.Int64("generation", gen))

	uc.armLeaseTimer(ride, driverID, gen)
	return nil
}

func (uc *DispatchUC) popNextCandidate(ctx context.Context, rideID string) (string, bool, error) {
	for {
		driverID, ok, err := uc.offerRepo.PopCandidate(ctx, rideID)
		if err != nil {
			return "", false, fmt.Errorf("failed to pop candidate: %w", err)
		}
		if !ok {
			return "", false, nil
		}

		// A preferred-driver hint may duplicate a discovered candidate;
		// skip anyone already tried
		rejected, err := uc.offerRepo.IsRejected(ctx, rideID, driverID)
		if err != nil {
			return "", false, fmt.Errorf("failed to check rejected set: %w", err)
		}
		if !rejected {
			return driverID, true, nil
		}
	}
}

func (uc *DispatchUC) armLeaseTimer(ride *models.Ride, driverID string, gen int64) {
	rideID := ride.RideID.String()

	// Register before arming: the callback releases its entry by generation
	// and may run before afterFunc returns
	uc.mu.Lock()
	uc.timers[rideID] = armedLease{gen: gen}
	uc.mu.Unlock()

	timer := uc.afterFunc(uc.offerLease(), func() {
		uc.handleOfferTimeout(ride, driverID, gen)
	})

	uc.mu.Lock()
	if lease, ok := uc.timers[rideID]; ok && lease.gen == gen {
		lease.timer = timer
		uc.timers[rideID] = lease
	} else {
		timer.Stop()
	}
	uc.mu.Unlock()
}

// releaseLeaseTimer drops the ride's timer entry if it still belongs to the
// given generation. Called by the fired callback itself, so a stale timeout
// never evicts the timer guarding a newer offer.
func (uc *DispatchUC) releaseLeaseTimer(rideID string, gen int64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if lease, ok := uc.timers[rideID]; ok && lease.gen == gen {
		delete(uc.timers, rideID)
	}
}

// handleOfferTimeout fires after the lease elapses. The callback may be
// stale: the driver may have answered, a newer offer may exist, or the ride
// may have been cancelled. It re-validates everything against the ephemeral
// state before acting, and never propagates an error to whoever armed it.
func (uc *DispatchUC) handleOfferTimeout(ride *models.Ride, driverID string, gen int64) {
	ctx := context.Background()
	rideID := ride.RideID.String()

	// The timer backing this callback is spent either way
	uc.releaseLeaseTimer(rideID, gen)

	phase, err := uc.offerRepo.GetPhase(ctx, rideID)
	if err != nil {
		logger.Warn("Offer timeout: failed to read phase",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return
	}
	if phase != models.OfferPhaseSearching {
		return
	}

	cleared, err := uc.offerRepo.ClearCurrentOffer(ctx, rideID, driverID, gen)
	if err != nil {
		logger.Warn("Offer timeout: failed to clear current offer",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return
	}
	if !cleared {
		// A newer offer superseded this one; stale timer, nothing to do
		return
	}

	observability.OffersTimedOut.Inc()
	logger.Info("Offer timed out",
		logger.String("ride_id", rideID),
		logger.String("driver_id", driverID))

	uc.expireOffer(ctx, ride, driverID)
}

// expireOffer is the shared tail of the timeout and explicit-reject paths:
// record the driver as tried, reopen the durable ride, tell the driver the
// offer is gone, and move to the next candidate.
func (uc *DispatchUC) expireOffer(ctx context.Context, ride *models.Ride, driverID string) {
	rideID := ride.RideID.String()

	if err := uc.offerRepo.AddRejected(ctx, rideID, driverID); err != nil {
		logger.Warn("Failed to record rejected driver",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	if err := uc.sink.ReopenRequested(ctx, rideID); err != nil && !apperrors.IsStateConflict(err) {
		logger.Warn("Failed to reopen ride after expired offer",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	uc.gw.NotifyOfferCancelled(ctx, driverID, rideID)

	if err := uc.offerNext(ctx, ride); err != nil {
		logger.Error("Failed to advance offer loop",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}
}

// AcceptOffer finalizes the ride on the driver holding the current offer
func (uc *DispatchUC) AcceptOffer(ctx context.Context, rideID, driverID string) (*models.Ride, error) {
	if rideID == "" {
		return nil, apperrors.ErrInvalidRideID
	}
	if driverID == "" {
		return nil, apperrors.ErrInvalidDriverID
	}

	current, err := uc.offerRepo.GetCurrentOffer(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to read current offer: %w", err)
	}

	if current == nil || current.DriverID != driverID {
		// No outstanding offer for this caller. A repeated accept from the
		// driver that already won is idempotent, not an error.
		ride, lookupErr := uc.sink.GetRideByID(ctx, rideID)
		if lookupErr == nil && ride.Status == models.RideStatusAccepted &&
			ride.DriverID != nil && ride.DriverID.String() == driverID {
			return ride, nil
		}
		return nil, apperrors.ErrNotCurrentOffer
	}

	if err := uc.sink.FinalizeOnAccept(ctx, rideID, driverID); err != nil {
		if apperrors.IsStateConflict(err) {
			return nil, apperrors.ErrNotCurrentOffer
		}
		return nil, fmt.Errorf("failed to finalize acceptance: %w", err)
	}

	if err := uc.offerRepo.SetPhase(ctx, rideID, models.OfferPhaseAssigned); err != nil {
		logger.Warn("Failed to mark offer phase assigned",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}
	if _, err := uc.offerRepo.ClearCurrentOffer(ctx, rideID, driverID, current.Generation); err != nil {
		logger.Warn("Failed to clear current offer on accept",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}
	uc.cancelLeaseTimer(rideID)

	ride, err := uc.sink.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accepted ride: %w", err)
	}

	uc.gw.NotifyRideEvent(ctx, models.RideEvent{
		RideID:    rideID,
		Status:    models.RideStatusAccepted,
		DriverID:  driverID,
		Timestamp: time.Now(),
	})

	observability.OffersAccepted.Inc()
	logger.Info("Offer accepted",
		logger.String("ride_id", rideID),
		logger.String("driver_id", driverID))

	// Coordinator's job is done; the lifecycle manager owns the ride now
	if err := uc.offerRepo.ClearOfferState(ctx, rideID); err != nil {
		logger.Warn("Failed to clear offer state after accept",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	return ride, nil
}

// RejectOffer is an explicit driver decline: the timeout branch applied
// immediately instead of waiting for the lease to elapse
func (uc *DispatchUC) RejectOffer(ctx context.Context, rideID, driverID string) error {
	if rideID == "" {
		return apperrors.ErrInvalidRideID
	}
	if driverID == "" {
		return apperrors.ErrInvalidDriverID
	}

	current, err := uc.offerRepo.GetCurrentOffer(ctx, rideID)
	if err != nil {
		return fmt.Errorf("failed to read current offer: %w", err)
	}
	if current == nil || current.DriverID != driverID {
		return apperrors.ErrNotCurrentOffer
	}

	cleared, err := uc.offerRepo.ClearCurrentOffer(ctx, rideID, driverID, current.Generation)
	if err != nil {
		return fmt.Errorf("failed to clear current offer: %w", err)
	}
	if !cleared {
		// Timeout beat the explicit reject; both converge on the same
		// reopen path, so whichever fired first already handled it
		return nil
	}
	uc.cancelLeaseTimer(rideID)

	observability.OffersRejected.Inc()
	logger.Info("Offer rejected",
		logger.String("ride_id", rideID),
		logger.String("driver_id", driverID))

	ride, err := uc.sink.GetRideByID(ctx, rideID)
	if err != nil {
		return fmt.Errorf("failed to load ride: %w", err)
	}

	uc.expireOffer(ctx, ride, driverID)
	return nil
}

// CancelDispatch tears down the ride's ephemeral offer state. Called when
// the ride is cancelled at the lifecycle level while matching is still in
// flight.
func (uc *DispatchUC) CancelDispatch(ctx context.Context, rideID string) error {
	current, err := uc.offerRepo.GetCurrentOffer(ctx, rideID)
	if err != nil {
		return fmt.Errorf("failed to read current offer: %w", err)
	}
	if current != nil {
		uc.gw.NotifyOfferCancelled(ctx, current.DriverID, rideID)
	}

	uc.cancelLeaseTimer(rideID)
	if err := uc.offerRepo.ClearOfferState(ctx, rideID); err != nil {
		return fmt.Errorf("failed to clear offer state: %w", err)
	}
	return nil
}

func (uc *DispatchUC) finishNoDrivers(ctx context.Context, rideID string) error {
	if err := uc.offerRepo.SetPhase(ctx, rideID, models.OfferPhaseNoDrivers); err != nil {
		logger.Warn("Failed to set no_drivers phase",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	if err := uc.sink.MarkNoDrivers(ctx, rideID); err != nil && !apperrors.IsStateConflict(err) {
		return fmt.Errorf("failed to mark ride no_drivers: %w", err)
	}

	uc.gw.NotifyRideEvent(ctx, models.RideEvent{
		RideID:    rideID,
		Status:    models.RideStatusNoDrivers,
		Timestamp: time.Now(),
	})

	observability.RidesNoDrivers.Inc()
	logger.Info("Ride exhausted all candidates", logger.String("ride_id", rideID))

	if err := uc.offerRepo.ClearOfferState(ctx, rideID); err != nil {
		logger.Warn("Failed to clear offer state",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}
	return nil
}

func (uc *DispatchUC) cancelLeaseTimer(rideID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if lease, ok := uc.timers[rideID]; ok {
		if lease.timer != nil {
			lease.timer.Stop()
		}
		delete(uc.timers, rideID)
	}
}
