package usecase

import (
	"context"
	"time"

	"github.com/ojekin/dispatch/internal/pkg/logger"
	"github.com/ojekin/dispatch/internal/pkg/models"
	"github.com/ojekin/dispatch/internal/pkg/observability"
	"github.com/ojekin/dispatch/services/scheduler"
)

// Poller drives scheduled and reserved rides into dispatch and recovers
// rides whose offer lease outlived its in-process timer. Each tick reopens
// expired offers, then releases lapsed reservation holds and claims rides
// whose pickup time falls inside the dispatch offset window, handing both
// to the offer coordinator. A ride claimed from a reservation carries its
// held driver as the preferred-driver hint.
type Poller struct {
	cfg        *models.Config
	repo       scheduler.SchedulerRepo
	dispatcher scheduler.Dispatcher
}

// NewPoller creates a new dispatch poller
func NewPoller(cfg *models.Config, repo scheduler.SchedulerRepo, dispatcher scheduler.Dispatcher) *Poller {
	return &Poller{
		cfg:        cfg,
		repo:       repo,
		dispatcher: dispatcher,
	}
}

// Run ticks until the context is cancelled
func (p *Poller) Run(ctx context.Context) {
	interval := time.Duration(p.cfg.Scheduler.IntervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Dispatch poller started",
		logger.Duration("interval", interval),
		logger.Int("batch_size", p.cfg.Scheduler.BatchSize))

	for {
		select {
		case <-ctx.Done():
			logger.Info("Dispatch poller stopped")
			return
		case <-ticker.C:
			p.Tick(ctx)
		}
	}
}

// Tick runs one poll cycle. Exported so operational tooling and tests can
// drive cycles without the ticker.
func (p *Poller) Tick(ctx context.Context) {
	now := time.Now()

	p.recoverExpiredOffers(ctx, now)

	due := now.Add(time.Duration(p.cfg.Scheduler.DispatchOffsetMinutes) * time.Minute)
	released, claimed, err := p.repo.ReleaseAndClaimDue(ctx, now, due, p.cfg.Scheduler.BatchSize)
	if err != nil {
		logger.Error("Failed to claim due scheduled rides", logger.Err(err))
		return
	}
	if released > 0 {
		observability.ReservationsReleased.Add(float64(released))
		logger.Info("Released expired reservations", logger.Int64("count", released))
	}
	if len(claimed) == 0 {
		return
	}

	observability.ScheduledRidesClaimed.Add(float64(len(claimed)))
	logger.Info("Claimed due rides", logger.Int("count", len(claimed)))

	for _, ride := range claimed {
		hint := ""
		if ride.DriverID != nil {
			hint = ride.DriverID.String()
			ride.DriverID = nil
		}
		if err := p.dispatcher.DispatchRide(ctx, ride, hint); err != nil {
			logger.Error("Failed to dispatch claimed ride",
				logger.String("ride_id", ride.RideID.String()),
				logger.Err(err))
		}
	}
}

// recoverExpiredOffers un-strands rides whose lease timer died with a
// previous process: the durable offer row still says offered but its
// expiry timestamp has passed. Stale ephemeral state is torn down before
// the ride re-enters dispatch with a fresh candidate queue.
func (p *Poller) recoverExpiredOffers(ctx context.Context, now time.Time) {
	reopened, err := p.repo.ReopenExpiredOffers(ctx, now)
	if err != nil {
		logger.Error("Failed to reopen expired offers", logger.Err(err))
		return
	}
	if len(reopened) == 0 {
		return
	}

	observability.OffersRecovered.Add(float64(len(reopened)))
	logger.Info("Reopened expired offers", logger.Int("count", len(reopened)))

	for _, ride := range reopened {
		rideID := ride.RideID.String()
		if err := p.dispatcher.CancelDispatch(ctx, rideID); err != nil {
			logger.Warn("Failed to clear stale offer state",
				logger.String("ride_id", rideID),
				logger.Err(err))
		}
		if err := p.dispatcher.DispatchRide(ctx, ride, ""); err != nil {
			logger.Error("Failed to re-dispatch recovered ride",
				logger.String("ride_id", rideID),
				logger.Err(err))
		}
	}
}
