package constants

// Redis key formats
const (
	KeyDriverLocation = "driver:location:%s" // Format: driver:location:{driver_id}
	KeyDriverGeo      = "driver:geo"         // GEO set of all known driver positions
	KeyOnlineDrivers  = "drivers:online"     // Set of online driver IDs
	KeyDriverIndex    = "drivers:index"      // Set of all known driver IDs
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldGeohash   = "geohash"
	FieldOnline    = "online"
	FieldTimestamp = "ts"
)
