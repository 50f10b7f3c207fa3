package models

// AdminStats is the operational summary served to the admin dashboard
type AdminStats struct {
	TotalRides      int     `json:"total_rides" db:"total_rides"`
	TotalCommission float64 `json:"total_commission" db:"total_commission"`
	ActiveDrivers   int     `json:"active_drivers"`
	ActiveRiders    int     `json:"active_riders" db:"active_riders"`
}
