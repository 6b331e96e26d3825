package constants

// Redis key formats
const (
	// Presence index
	KeyPresenceGeo    = "presence:geo:%s:%s"    // Format: presence:geo:{region}:{service}
	KeyPresenceOnline = "presence:online:%s:%s" // Format: presence:online:{region}:{service}
	KeyDriverPresence = "presence:driver:%s"    // Format: presence:driver:{driver_id}
	KeyDriverConns    = "presence:conns:%s"     // Format: presence:conns:{driver_id}
	KeyDriverScopes   = "presence:scopes:%s"    // Format: presence:scopes:{driver_id}

	// Offer coordinator
	KeyOfferPhase    = "offer:phase:%s"    // Format: offer:phase:{ride_id}
	KeyOfferQueue    = "offer:queue:%s"    // Format: offer:queue:{ride_id}
	KeyOfferCurrent  = "offer:current:%s"  // Format: offer:current:{ride_id}
	KeyOfferGen      = "offer:gen:%s"      // Format: offer:gen:{ride_id}
	KeyOfferRejected = "offer:rejected:%s" // Format: offer:rejected:{ride_id}
)

// Redis hash fields
const (
	FieldLatitude   = "lat"
	FieldLongitude  = "lng"
	FieldGeohash    = "geohash"
	FieldRegion     = "region"
	FieldServices   = "services"
	FieldTimestamp  = "ts"
	FieldDriverID   = "driver_id"
	FieldGeneration = "gen"
	FieldExpiresAt  = "expires_at"
)
