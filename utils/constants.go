package utils

// Well-known store keys. Each collection is one JSON value under its key.
const (
	KeyProviders     = "providers"
	KeyUsers         = "users"
	KeyReviews       = "reviews"
	KeyNotifications = "notifications"
	KeyPayments      = "payments"
	KeyBookings      = "bookings"
	KeyVehicles      = "vehicles"
	KeyUserVehicles  = "user_vehicles"
	KeyNotifPrefs    = "notif_prefs"
)

// SessionKeyPrefix prefixes per-session current-user records.
const SessionKeyPrefix = "current_user:"

// SessionKey returns the store key for a session.
func SessionKey(sessionID string) string {
	return SessionKeyPrefix + sessionID
}
