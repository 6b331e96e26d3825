package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojekin/dispatch/internal/pkg/apperrors"
	"github.com/ojekin/dispatch/internal/pkg/models"
	"github.com/ojekin/dispatch/services/dispatch/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{
			OfferLeaseSeconds: 15,
			RadiusStepsM:      []float64{5000, 10000},
			CandidateLimit:    10,
		},
	}
}

func testRide() *models.Ride {
	return &models.Ride{
		RideID:      uuid.New(),
		PassengerID: uuid.New(),
		Status:      models.RideStatusRequested,
		TripType:    models.TripTypeInstant,
		Region:      "jakarta",
		ServiceType: "car",
		Pickup:      models.Location{Latitude: -6.2, Longitude: 106.8},
		Dropoff:     models.Location{Latitude: -6.3, Longitude: 106.9},
	}
}

// newTestUC wires a coordinator whose lease timers never fire on their own;
// timeout callbacks are captured so tests invoke them deterministically.
func newTestUC(ctrl *gomock.Controller) (*DispatchUC, *mocks.MockOfferRepo, *mocks.MockCandidateSource, *mocks.MockRideStateSink, *mocks.MockDispatchGW, *[]func()) {
	offerRepo := mocks.NewMockOfferRepo(ctrl)
	candidates := mocks.NewMockCandidateSource(ctrl)
	sink := mocks.NewMockRideStateSink(ctrl)
	gw := mocks.NewMockDispatchGW(ctrl)

	uc := NewDispatchUC(testConfig(), offerRepo, candidates, sink, gw)
	captured := &[]func(){}
	uc.afterFunc = func(d time.Duration, f func()) *time.Timer {
		*captured = append(*captured, f)
		return time.NewTimer(time.Hour)
	}
	return uc, offerRepo, candidates, sink, gw, captured
}

func TestDispatchRide_FirstRadiusWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, candidates, sink, gw, _ := newTestUC(ctrl)
	ride := testRide()
	rideID := ride.RideID.String()
	scope := models.Scope{Region: "jakarta", Service: "car"}

	// First radius already yields drivers; the wider radius is never queried
	candidates.EXPECT().
		Nearby(gomock.Any(), scope, &ride.Pickup, 5000.0, 10).
		Return([]*models.NearbyDriver{
			{DriverID: "driver-1", DistanceM: 900},
			{DriverID: "driver-2", DistanceM: 2400},
		}, nil)

	offerRepo.EXPECT().SeedCandidates(gomock.Any(), rideID, []string{"driver-1", "driver-2"}).Return(nil)
	offerRepo.EXPECT().GetPhase(gomock.Any(), rideID).Return(models.OfferPhaseSearching, nil)
	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).Return(nil, nil)
	offerRepo.EXPECT().PopCandidate(gomock.Any(), rideID).Return("driver-1", true, nil)
	offerRepo.EXPECT().IsRejected(gomock.Any(), rideID, "driver-1").Return(false, nil)
	offerRepo.EXPECT().SetCurrentOffer(gomock.Any(), rideID, "driver-1", gomock.Any()).Return(int64(1), nil)
	sink.EXPECT().SetOffer(gomock.Any(), rideID, "driver-1", gomock.Any()).Return(nil)
	gw.EXPECT().NotifyJobOffer(gomock.Any(), "driver-1", gomock.Any())

	err := uc.DispatchRide(context.Background(), ride, "")
	assert.NoError(t, err)
}

func TestDispatchRide_NoCandidatesAnyRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, candidates, sink, gw, _ := newTestUC(ctrl)
	ride := testRide()
	rideID := ride.RideID.String()
	scope := models.Scope{Region: "jakarta", Service: "car"}

	candidates.EXPECT().Nearby(gomock.Any(), scope, &ride.Pickup, 5000.0, 10).Return(nil, nil)
	candidates.EXPECT().Nearby(gomock.Any(), scope, &ride.Pickup, 10000.0, 10).Return(nil, nil)

	offerRepo.EXPECT().SetPhase(gomock.Any(), rideID, models.OfferPhaseNoDrivers).Return(nil)
	sink.EXPECT().MarkNoDrivers(gomock.Any(), rideID).Return(nil)
	gw.EXPECT().NotifyRideEvent(gomock.Any(), gomock.Any()).Do(func(_ context.Context, ev models.RideEvent) {
		assert.Equal(t, rideID, ev.RideID)
		assert.Equal(t, models.RideStatusNoDrivers, ev.Status)
	})
	offerRepo.EXPECT().ClearOfferState(gomock.Any(), rideID).Return(nil)

	err := uc.DispatchRide(context.Background(), ride, "")
	assert.NoError(t, err)
}

func TestDispatchRide_QueueExhaustedAfterTimeouts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, candidates, sink, gw, timers := newTestUC(ctrl)
	ride := testRide()
	rideID := ride.RideID.String()
	scope := models.Scope{Region: "jakarta", Service: "car"}

	candidates.EXPECT().
		Nearby(gomock.Any(), scope, &ride.Pickup, 5000.0, 10).
		Return([]*models.NearbyDriver{{DriverID: "driver-1"}}, nil)

	offerRepo.EXPECT().SeedCandidates(gomock.Any(), rideID, []string{"driver-1"}).Return(nil)

	// First pass offers the only candidate
	offerRepo.EXPECT().GetPhase(gomock.Any(), rideID).Return(models.OfferPhaseSearching, nil).Times(3)
	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).Return(nil, nil)
	offerRepo.EXPECT().PopCandidate(gomock.Any(), rideID).Return("driver-1", true, nil)
	offerRepo.EXPECT().IsRejected(gomock.Any(), rideID, "driver-1").Return(false, nil)
	offerRepo.EXPECT().SetCurrentOffer(gomock.Any(), rideID, "driver-1", gomock.Any()).Return(int64(1), nil)
	sink.EXPECT().SetOffer(gomock.Any(), rideID, "driver-1", gomock.Any()).Return(nil)
	gw.EXPECT().NotifyJobOffer(gomock.Any(), "driver-1", gomock.Any())

	require.NoError(t, uc.DispatchRide(context.Background(), ride, ""))
	require.Len(t, *timers, 1)

	// Lease elapses: driver-1 is recorded, ride reopens, queue is empty,
	// ride lands in no_drivers
	offerRepo.EXPECT().ClearCurrentOffer(gomock.Any(), rideID, "driver-1", int64(1)).Return(true, nil)
	offerRepo.EXPECT().AddRejected(gomock.Any(), rideID, "driver-1").Return(nil)
	sink.EXPECT().ReopenRequested(gomock.Any(), rideID).Return(nil)
	gw.EXPECT().NotifyOfferCancelled(gomock.Any(), "driver-1", rideID)
	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).Return(nil, nil)
	offerRepo.EXPECT().PopCandidate(gomock.Any(), rideID).Return("", false, nil)
	offerRepo.EXPECT().SetPhase(gomock.Any(), rideID, models.OfferPhaseNoDrivers).Return(nil)
	sink.EXPECT().MarkNoDrivers(gomock.Any(), rideID).Return(nil)
	gw.EXPECT().NotifyRideEvent(gomock.Any(), gomock.Any())
	offerRepo.EXPECT().ClearOfferState(gomock.Any(), rideID).Return(nil)

	(*timers)[0]()
}

func TestOfferTimeout_ExhaustedRideRetainsNoTimer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, candidates, sink, gw, timers := newTestUC(ctrl)
	ride := testRide()
	rideID := ride.RideID.String()
	scope := models.Scope{Region: "jakarta", Service: "car"}

	candidates.EXPECT().
		Nearby(gomock.Any(), scope, &ride.Pickup, 5000.0, 10).
		Return([]*models.NearbyDriver{{DriverID: "driver-1"}}, nil)
	offerRepo.EXPECT().SeedCandidates(gomock.Any(), rideID, []string{"driver-1"}).Return(nil)
	offerRepo.EXPECT().GetPhase(gomock.Any(), rideID).Return(models.OfferPhaseSearching, nil).Times(3)
	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).Return(nil, nil)
	offerRepo.EXPECT().PopCandidate(gomock.Any(), rideID).Return("driver-1", true, nil)
	offerRepo.EXPECT().IsRejected(gomock.Any(), rideID, "driver-1").Return(false, nil)
	offerRepo.EXPECT().SetCurrentOffer(gomock.Any(), rideID, "driver-1", gomock.Any()).Return(int64(1), nil)
	sink.EXPECT().SetOffer(gomock.Any(), rideID, "driver-1", gomock.Any()).Return(nil)
	gw.EXPECT().NotifyJobOffer(gomock.Any(), "driver-1", gomock.Any())

	require.NoError(t, uc.DispatchRide(context.Background(), ride, ""))

	uc.mu.Lock()
	_, armed := uc.timers[rideID]
	uc.mu.Unlock()
	require.True(t, armed)

	offerRepo.EXPECT().ClearCurrentOffer(gomock.Any(), rideID, "driver-1", int64(1)).Return(true, nil)
	offerRepo.EXPECT().AddRejected(gomock.Any(), rideID, "driver-1").Return(nil)
	sink.EXPECT().ReopenRequested(gomock.Any(), rideID).Return(nil)
	gw.EXPECT().NotifyOfferCancelled(gomock.Any(), "driver-1", rideID)
	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).Return(nil, nil)
	offerRepo.EXPECT().PopCandidate(gomock.Any(), rideID).Return("", false, nil)
	offerRepo.EXPECT().SetPhase(gomock.Any(), rideID, models.OfferPhaseNoDrivers).Return(nil)
	sink.EXPECT().MarkNoDrivers(gomock.Any(), rideID).Return(nil)
	gw.EXPECT().NotifyRideEvent(gomock.Any(), gomock.Any())
	offerRepo.EXPECT().ClearOfferState(gomock.Any(), rideID).Return(nil)

	(*timers)[0]()

	// Fired timer releases its own map entry; a terminal ride must hold
	// nothing in the coordinator
	uc.mu.Lock()
	_, armed = uc.timers[rideID]
	uc.mu.Unlock()
	assert.False(t, armed)
}

func TestOfferTimeout_ReopenFailureStillAdvances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, _, sink, gw, _ := newTestUC(ctrl)
	ride := testRide()
	rideID := ride.RideID.String()

	// The reopen write is lost transiently; the loop must not stop, and
	// the next offer lands over the stale durable 'offered' row
	offerRepo.EXPECT().GetPhase(gomock.Any(), rideID).Return(models.OfferPhaseSearching, nil).Times(2)
	offerRepo.EXPECT().ClearCurrentOffer(gomock.Any(), rideID, "driver-1", int64(1)).Return(true, nil)
	offerRepo.EXPECT().AddRejected(gomock.Any(), rideID, "driver-1").Return(nil)
	sink.EXPECT().ReopenRequested(gomock.Any(), rideID).Return(errors.New("write timeout"))
	gw.EXPECT().NotifyOfferCancelled(gomock.Any(), "driver-1", rideID)

	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).Return(nil, nil)
	offerRepo.EXPECT().PopCandidate(gomock.Any(), rideID).Return("driver-2", true, nil)
	offerRepo.EXPECT().IsRejected(gomock.Any(), rideID, "driver-2").Return(false, nil)
	offerRepo.EXPECT().SetCurrentOffer(gomock.Any(), rideID, "driver-2", gomock.Any()).Return(int64(2), nil)
	sink.EXPECT().SetOffer(gomock.Any(), rideID, "driver-2", gomock.Any()).Return(nil)
	gw.EXPECT().NotifyJobOffer(gomock.Any(), "driver-2", gomock.Any())

	uc.handleOfferTimeout(ride, "driver-1", 1)
}

func TestHandleOfferTimeout_StaleGeneration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, _, _, _, _ := newTestUC(ctrl)
	ride := testRide()
	rideID := ride.RideID.String()

	offerRepo.EXPECT().GetPhase(gomock.Any(), rideID).Return(models.OfferPhaseSearching, nil)
	// Conditional clear fails: a newer offer superseded this generation.
	// Nothing else may happen.
	offerRepo.EXPECT().ClearCurrentOffer(gomock.Any(), rideID, "driver-1", int64(1)).Return(false, nil)

	uc.handleOfferTimeout(ride, "driver-1", 1)
}

func TestHandleOfferTimeout_PhaseNoLongerSearching(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, _, _, _, _ := newTestUC(ctrl)
	ride := testRide()

	offerRepo.EXPECT().GetPhase(gomock.Any(), ride.RideID.String()).Return(models.OfferPhaseAssigned, nil)

	uc.handleOfferTimeout(ride, "driver-1", 1)
}

func TestAcceptOffer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, _, sink, gw, _ := newTestUC(ctrl)
	rideID := uuid.New().String()
	driverUUID := uuid.New()
	driverID := driverUUID.String()

	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).
		Return(&models.CurrentOffer{DriverID: driverID, Generation: 2}, nil)
	sink.EXPECT().FinalizeOnAccept(gomock.Any(), rideID, driverID).Return(nil)
	offerRepo.EXPECT().SetPhase(gomock.Any(), rideID, models.OfferPhaseAssigned).Return(nil)
	offerRepo.EXPECT().ClearCurrentOffer(gomock.Any(), rideID, driverID, int64(2)).Return(true, nil)
	accepted := &models.Ride{Status: models.RideStatusAccepted, DriverID: &driverUUID}
	sink.EXPECT().GetRideByID(gomock.Any(), rideID).Return(accepted, nil)
	gw.EXPECT().NotifyRideEvent(gomock.Any(), gomock.Any())
	offerRepo.EXPECT().ClearOfferState(gomock.Any(), rideID).Return(nil)

	ride, err := uc.AcceptOffer(context.Background(), rideID, driverID)
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusAccepted, ride.Status)
}

func TestAcceptOffer_NotCurrentDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, _, sink, _, _ := newTestUC(ctrl)
	rideID := uuid.New().String()

	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).
		Return(&models.CurrentOffer{DriverID: "driver-1", Generation: 1}, nil)
	sink.EXPECT().GetRideByID(gomock.Any(), rideID).
		Return(&models.Ride{Status: models.RideStatusOffered}, nil)

	_, err := uc.AcceptOffer(context.Background(), rideID, "driver-2")
	assert.ErrorIs(t, err, apperrors.ErrNotCurrentOffer)
}

func TestAcceptOffer_IdempotentRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, _, sink, _, _ := newTestUC(ctrl)
	rideID := uuid.New().String()
	driverUUID := uuid.New()
	driverID := driverUUID.String()

	// Offer state is already torn down; the durable ride shows this driver won
	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).Return(nil, nil)
	sink.EXPECT().GetRideByID(gomock.Any(), rideID).
		Return(&models.Ride{Status: models.RideStatusAccepted, DriverID: &driverUUID}, nil)

	ride, err := uc.AcceptOffer(context.Background(), rideID, driverID)
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusAccepted, ride.Status)
}

func TestAcceptOffer_DurableConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, _, sink, _, _ := newTestUC(ctrl)
	rideID := uuid.New().String()

	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).
		Return(&models.CurrentOffer{DriverID: "driver-1", Generation: 1}, nil)
	sink.EXPECT().FinalizeOnAccept(gomock.Any(), rideID, "driver-1").
		Return(apperrors.ErrStateConflict)

	_, err := uc.AcceptOffer(context.Background(), rideID, "driver-1")
	assert.ErrorIs(t, err, apperrors.ErrNotCurrentOffer)
}

func TestRejectOffer_AdvancesToNextCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, _, sink, gw, _ := newTestUC(ctrl)
	ride := testRide()
	rideID := ride.RideID.String()

	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).
		Return(&models.CurrentOffer{DriverID: "driver-1", Generation: 1}, nil)
	offerRepo.EXPECT().ClearCurrentOffer(gomock.Any(), rideID, "driver-1", int64(1)).Return(true, nil)
	sink.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)

	// Expiry tail: record, reopen, notify, next offer
	offerRepo.EXPECT().AddRejected(gomock.Any(), rideID, "driver-1").Return(nil)
	sink.EXPECT().ReopenRequested(gomock.Any(), rideID).Return(nil)
	gw.EXPECT().NotifyOfferCancelled(gomock.Any(), "driver-1", rideID)

	offerRepo.EXPECT().GetPhase(gomock.Any(), rideID).Return(models.OfferPhaseSearching, nil)
	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).Return(nil, nil)
	offerRepo.EXPECT().PopCandidate(gomock.Any(), rideID).Return("driver-2", true, nil)
	offerRepo.EXPECT().IsRejected(gomock.Any(), rideID, "driver-2").Return(false, nil)
	offerRepo.EXPECT().SetCurrentOffer(gomock.Any(), rideID, "driver-2", gomock.Any()).Return(int64(2), nil)
	sink.EXPECT().SetOffer(gomock.Any(), rideID, "driver-2", gomock.Any()).Return(nil)
	gw.EXPECT().NotifyJobOffer(gomock.Any(), "driver-2", gomock.Any())

	err := uc.RejectOffer(context.Background(), rideID, "driver-1")
	assert.NoError(t, err)
}

func TestRejectOffer_WrongDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, _, _, _, _ := newTestUC(ctrl)
	rideID := uuid.New().String()

	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).
		Return(&models.CurrentOffer{DriverID: "driver-1", Generation: 1}, nil)

	err := uc.RejectOffer(context.Background(), rideID, "driver-9")
	assert.ErrorIs(t, err, apperrors.ErrNotCurrentOffer)
}

func TestOfferNext_SkipsAlreadyRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, _, sink, gw, _ := newTestUC(ctrl)
	ride := testRide()
	rideID := ride.RideID.String()

	offerRepo.EXPECT().GetPhase(gomock.Any(), rideID).Return(models.OfferPhaseSearching, nil)
	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).Return(nil, nil)
	// driver-1 appears twice in the queue via the preferred hint; the
	// second occurrence was already tried
	offerRepo.EXPECT().PopCandidate(gomock.Any(), rideID).Return("driver-1", true, nil)
	offerRepo.EXPECT().IsRejected(gomock.Any(), rideID, "driver-1").Return(true, nil)
	offerRepo.EXPECT().PopCandidate(gomock.Any(), rideID).Return("driver-2", true, nil)
	offerRepo.EXPECT().IsRejected(gomock.Any(), rideID, "driver-2").Return(false, nil)
	offerRepo.EXPECT().SetCurrentOffer(gomock.Any(), rideID, "driver-2", gomock.Any()).Return(int64(3), nil)
	sink.EXPECT().SetOffer(gomock.Any(), rideID, "driver-2", gomock.Any()).Return(nil)
	gw.EXPECT().NotifyJobOffer(gomock.Any(), "driver-2", gomock.Any())

	err := uc.offerNext(context.Background(), ride)
	assert.NoError(t, err)
}

func TestOfferNext_NoOpWhenOfferOutstanding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, _, _, _, _ := newTestUC(ctrl)
	ride := testRide()
	rideID := ride.RideID.String()

	offerRepo.EXPECT().GetPhase(gomock.Any(), rideID).Return(models.OfferPhaseSearching, nil)
	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).
		Return(&models.CurrentOffer{DriverID: "driver-1", Generation: 1}, nil)

	err := uc.offerNext(context.Background(), ride)
	assert.NoError(t, err)
}

func TestOfferNext_DurableConflictTearsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, _, sink, _, _ := newTestUC(ctrl)
	ride := testRide()
	rideID := ride.RideID.String()

	offerRepo.EXPECT().GetPhase(gomock.Any(), rideID).Return(models.OfferPhaseSearching, nil)
	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).Return(nil, nil)
	offerRepo.EXPECT().PopCandidate(gomock.Any(), rideID).Return("driver-1", true, nil)
	offerRepo.EXPECT().IsRejected(gomock.Any(), rideID, "driver-1").Return(false, nil)
	offerRepo.EXPECT().SetCurrentOffer(gomock.Any(), rideID, "driver-1", gomock.Any()).Return(int64(1), nil)
	// Ride was cancelled under us; the loop stops without offering
	sink.EXPECT().SetOffer(gomock.Any(), rideID, "driver-1", gomock.Any()).
		Return(apperrors.ErrStateConflict)
	offerRepo.EXPECT().ClearOfferState(gomock.Any(), rideID).Return(nil)

	err := uc.offerNext(context.Background(), ride)
	assert.NoError(t, err)
}

func TestCancelDispatch_NotifiesCurrentDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, _, _, gw, _ := newTestUC(ctrl)
	rideID := uuid.New().String()

	offerRepo.EXPECT().GetCurrentOffer(gomock.Any(), rideID).
		Return(&models.CurrentOffer{DriverID: "driver-1", Generation: 4}, nil)
	gw.EXPECT().NotifyOfferCancelled(gomock.Any(), "driver-1", rideID)
	offerRepo.EXPECT().ClearOfferState(gomock.Any(), rideID).Return(nil)

	err := uc.CancelDispatch(context.Background(), rideID)
	assert.NoError(t, err)
}

func TestDispatchRide_SeedFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, offerRepo, candidates, _, _, _ := newTestUC(ctrl)
	ride := testRide()
	scope := models.Scope{Region: "jakarta", Service: "car"}

	candidates.EXPECT().
		Nearby(gomock.Any(), scope, &ride.Pickup, 5000.0, 10).
		Return([]*models.NearbyDriver{{DriverID: "driver-1"}}, nil)
	offerRepo.EXPECT().
		SeedCandidates(gomock.Any(), ride.RideID.String(), []string{"driver-1"}).
		Return(errors.New("redis down"))

	err := uc.DispatchRide(context.Background(), ride, "")
	assert.Error(t, err)
}
