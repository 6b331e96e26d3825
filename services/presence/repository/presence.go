package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/mmcloughlin/geohash"

	"github.com/ojekin/dispatch/internal/pkg/constants"
	"github.com/ojekin/dispatch/internal/pkg/database"
	"github.com/ojekin/dispatch/internal/pkg/models"
)

// PresenceRepo implements the presence index on Redis. Each driver appears
// in one geo set and one online set per scope; the per-driver presence hash
// carries a TTL refreshed on every location tick so a silent driver expires
// on its own.
type PresenceRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewPresenceRepository creates a new presence repository
func NewPresenceRepository(cfg *models.Config, redisClient *database.RedisClient) *PresenceRepo {
	return &PresenceRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

func (r *PresenceRepo) presenceTTL() time.Duration {
	return time.Duration(r.cfg.Presence.TTLSeconds) * time.Second
}

func scopeMember(scope models.Scope) string {
	return scope.Region + "|" + scope.Service
}

func parseScopeMember(member string) (models.Scope, bool) {
	parts := strings.SplitN(member, "|", 2)
	if len(parts) != 2 {
		return models.Scope{}, false
	}
	return models.Scope{Region: parts[0], Service: parts[1]}, true
}

// SetOnline registers the driver under the scope and records the
// connection. Reports whether the driver was previously unknown to the
// index, so a repeated beacon from an already-online driver reads as false.
func (r *PresenceRepo) SetOnline(ctx context.Context, driverID string, scope models.Scope, loc *models.Location, connID string) (bool, error) {
	geoKey := fmt.Sprintf(constants.KeyPresenceGeo, scope.Region, scope.Service)
	onlineKey := fmt.Sprintf(constants.KeyPresenceOnline, scope.Region, scope.Service)
	presenceKey := fmt.Sprintf(constants.KeyDriverPresence, driverID)
	scopesKey := fmt.Sprintf(constants.KeyDriverScopes, driverID)

	var known *redis.IntCmd
	err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		known = pipe.Exists(ctx, presenceKey)
		pipe.GeoAdd(ctx, geoKey, &redis.GeoLocation{
			Longitude: loc.Longitude,
			Latitude:  loc.Latitude,
			Name:      driverID,
		})
		pipe.SAdd(ctx, onlineKey, driverID)
		pipe.SAdd(ctx, scopesKey, scopeMember(scope))
		pipe.HSet(ctx, presenceKey, presenceFields(scope, loc))
		pipe.Expire(ctx, presenceKey, r.presenceTTL())
		if connID != "" {
			pipe.SAdd(ctx, fmt.Sprintf(constants.KeyDriverConns, driverID), connID)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to set driver online: %w", err)
	}
	return known.Val() == 0, nil
}

// RefreshLocation updates the geo entry and the presence hash atomically
// and refreshes the TTL. Called on every location tick, so it stays cheap:
// one pipelined round trip.
func (r *PresenceRepo) RefreshLocation(ctx context.Context, driverID string, scope models.Scope, loc *models.Location) error {
	geoKey := fmt.Sprintf(constants.KeyPresenceGeo, scope.Region, scope.Service)
	presenceKey := fmt.Sprintf(constants.KeyDriverPresence, driverID)

	err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.GeoAdd(ctx, geoKey, &redis.GeoLocation{
			Longitude: loc.Longitude,
			Latitude:  loc.Latitude,
			Name:      driverID,
		})
		pipe.HSet(ctx, presenceKey, presenceFields(scope, loc))
		pipe.Expire(ctx, presenceKey, r.presenceTTL())
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to refresh driver location: %w", err)
	}
	return nil
}

func presenceFields(scope models.Scope, loc *models.Location) map[string]interface{} {
	return map[string]interface{}{
		constants.FieldLatitude:  loc.Latitude,
		constants.FieldLongitude: loc.Longitude,
		constants.FieldGeohash:   geohash.Encode(loc.Latitude, loc.Longitude),
		constants.FieldRegion:    scope.Region,
		constants.FieldTimestamp: time.Now().Unix(),
	}
}

// RemoveConnection drops one live connection id and returns the remaining
// count. The caller decides whether the driver is truly offline.
func (r *PresenceRepo) RemoveConnection(ctx context.Context, driverID, connID string) (int64, error) {
	connsKey := fmt.Sprintf(constants.KeyDriverConns, driverID)
	if err := r.redisClient.SRem(ctx, connsKey, connID); err != nil {
		return 0, fmt.Errorf("failed to remove connection: %w", err)
	}
	remaining, err := r.redisClient.SCard(ctx, connsKey)
	if err != nil {
		return 0, fmt.Errorf("failed to count connections: %w", err)
	}
	return remaining, nil
}

// SetOffline removes the driver from every scope it registered under and
// deletes its presence record. Reports whether the driver was actually
// registered, so a redundant offline call reads as false.
func (r *PresenceRepo) SetOffline(ctx context.Context, driverID string) (bool, error) {
	scopesKey := fmt.Sprintf(constants.KeyDriverScopes, driverID)
	presenceKey := fmt.Sprintf(constants.KeyDriverPresence, driverID)

	members, err := r.redisClient.SMembers(ctx, scopesKey)
	if err != nil {
		return false, fmt.Errorf("failed to read driver scopes: %w", err)
	}
	known, err := r.redisClient.Exists(ctx, presenceKey)
	if err != nil {
		return false, fmt.Errorf("failed to check presence record: %w", err)
	}

	for _, member := range members {
		scope, ok := parseScopeMember(member)
		if !ok {
			continue
		}
		geoKey := fmt.Sprintf(constants.KeyPresenceGeo, scope.Region, scope.Service)
		onlineKey := fmt.Sprintf(constants.KeyPresenceOnline, scope.Region, scope.Service)
		if err := r.redisClient.ZRem(ctx, geoKey, driverID); err != nil {
			return false, fmt.Errorf("failed to remove geo entry: %w", err)
		}
		if err := r.redisClient.SRem(ctx, onlineKey, driverID); err != nil {
			return false, fmt.Errorf("failed to remove online entry: %w", err)
		}
	}

	if err := r.redisClient.Delete(ctx,
		scopesKey,
		presenceKey,
		fmt.Sprintf(constants.KeyDriverConns, driverID),
	); err != nil {
		return false, fmt.Errorf("failed to remove presence record: %w", err)
	}
	return len(members) > 0 || known > 0, nil
}

// Nearby returns online drivers within radiusM meters of the point, nearest
// first, capped at limit. Drivers whose presence record has expired are
// filtered out even if a stale geo entry remains.
func (r *PresenceRepo) Nearby(ctx context.Context, scope models.Scope, point *models.Location, radiusM float64, limit int) ([]*models.NearbyDriver, error) {
	geoKey := fmt.Sprintf(constants.KeyPresenceGeo, scope.Region, scope.Service)
	onlineKey := fmt.Sprintf(constants.KeyPresenceOnline, scope.Region, scope.Service)

	results, err := r.redisClient.GeoRadius(ctx, geoKey, point.Longitude, point.Latitude, radiusM, "m", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	nearby := make([]*models.NearbyDriver, 0, len(results))
	for _, result := range results {
		isMember, err := r.redisClient.SIsMember(ctx, onlineKey, result.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check driver availability: %w", err)
		}
		if !isMember {
			continue
		}
		nearby = append(nearby, &models.NearbyDriver{
			DriverID: result.Name,
			Location: models.Location{
				Latitude:  result.Latitude,
				Longitude: result.Longitude,
			},
			DistanceM: result.Dist,
		})
	}

	return nearby, nil
}

// GetPresence returns the driver's presence record
func (r *PresenceRepo) GetPresence(ctx context.Context, driverID string) (*models.DriverPresence, error) {
	presenceKey := fmt.Sprintf(constants.KeyDriverPresence, driverID)
	fields, err := r.redisClient.HGetAll(ctx, presenceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get presence record: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	var lat, lng float64
	var ts int64
	if latStr, ok := fields[constants.FieldLatitude]; ok {
		lat, _ = strconv.ParseFloat(latStr, 64)
	}
	if lngStr, ok := fields[constants.FieldLongitude]; ok {
		lng, _ = strconv.ParseFloat(lngStr, 64)
	}
	if tsStr, ok := fields[constants.FieldTimestamp]; ok {
		ts, _ = strconv.ParseInt(tsStr, 10, 64)
	}

	return &models.DriverPresence{
		DriverID: driverID,
		Region:   fields[constants.FieldRegion],
		Geohash:  fields[constants.FieldGeohash],
		Online:   true,
		Location: models.Location{
			Latitude:  lat,
			Longitude: lng,
			Timestamp: time.Unix(ts, 0),
		},
		LastSeen: time.Unix(ts, 0),
	}, nil
}

// IsOnline reports whether the driver is in the scope's online set
func (r *PresenceRepo) IsOnline(ctx context.Context, driverID string, scope models.Scope) (bool, error) {
	onlineKey := fmt.Sprintf(constants.KeyPresenceOnline, scope.Region, scope.Service)
	return r.redisClient.SIsMember(ctx, onlineKey, driverID)
}
