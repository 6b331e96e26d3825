package usecase

import (
	"context"
	"time"

	"github.com/ojekin/dispatch/internal/pkg/logger"
	"github.com/ojekin/dispatch/internal/pkg/models"
	"github.com/ojekin/dispatch/internal/pkg/observability"
)

// discoverCandidates runs the expanding-radius search: each radius step is
// tried in ascending order and the first step that yields at least one
// driver wins outright. Results from different radii are never merged; a
// failed step is logged and skipped rather than aborting the search.
func (uc *DispatchUC) discoverCandidates(ctx context.Context, scope models.Scope, pickup *models.Location) []string {
	start := time.Now()
	defer func() {
		observability.CandidateSearchSeconds.Observe(time.Since(start).Seconds())
	}()

	for _, radiusM := range uc.cfg.Dispatch.RadiusStepsM {
		nearby, err := uc.candidates.Nearby(ctx, scope, pickup, radiusM, uc.cfg.Dispatch.CandidateLimit)
		if err != nil {
			logger.Warn("Candidate search failed for radius, trying next",
				logger.Float64("radius_m", radiusM),
				logger.String("region", scope.Region),
				logger.Err(err))
			continue
		}
		if len(nearby) == 0 {
			continue
		}

		driverIDs := make([]string, len(nearby))
		for i, d := range nearby {
			driverIDs[i] = d.DriverID
		}
		logger.Info("Candidates found",
			logger.Float64("radius_m", radiusM),
			logger.Int("count", len(driverIDs)))
		return driverIDs
	}

	return nil
}

// orderCandidates places the preferred driver, when present and still
// online, at the head of the queue; everyone else keeps nearest-first
// order. Candidate ordering is fixed once the queue is seeded.
func (uc *DispatchUC) orderCandidates(ctx context.Context, scope models.Scope, candidates []string, preferredDriverID string) []string {
	if preferredDriverID == "" {
		return candidates
	}

	online, err := uc.candidates.IsOnline(ctx, preferredDriverID, scope)
	if err != nil {
		logger.Warn("Failed to check preferred driver presence",
			logger.String("driver_id", preferredDriverID),
			logger.Err(err))
		return candidates
	}
	if !online {
		return candidates
	}

	ordered := make([]string, 0, len(candidates)+1)
	ordered = append(ordered, preferredDriverID)
	for _, id := range candidates {
		if id != preferredDriverID {
			ordered = append(ordered, id)
		}
	}
	return ordered
}
