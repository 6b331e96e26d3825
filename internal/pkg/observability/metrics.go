package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OffersIssued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dispatch", Name: "offers_issued_total",
		Help: "Total offers pushed to candidate drivers"})
	OffersAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dispatch", Name: "offers_accepted_total",
		Help: "Total offers accepted by drivers"})
	OffersTimedOut = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dispatch", Name: "offers_timed_out_total",
		Help: "Total offers that expired without a response"})
	OffersRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dispatch", Name: "offers_rejected_total",
		Help: "Total offers explicitly declined by drivers"})
	RidesNoDrivers = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dispatch", Name: "rides_no_drivers_total",
		Help: "Total rides that exhausted every candidate"})
	DriversOnline = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "dispatch", Name: "drivers_online",
		Help: "Number of drivers currently online"})
	ScheduledRidesClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dispatch", Name: "scheduled_rides_claimed_total",
		Help: "Total scheduled rides activated by the dispatch trigger"})
	ReservationsReleased = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dispatch", Name: "reservations_released_total",
		Help: "Total expired reservation holds released"})
	OffersRecovered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dispatch", Name: "offers_recovered_total",
		Help: "Total expired offers reopened by the recovery sweep"})
	CandidateSearchSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "dispatch", Name: "candidate_search_seconds",
		Help:    "Latency of geospatial candidate discovery",
		Buckets: prometheus.DefBuckets})
)
