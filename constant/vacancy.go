package constant

type contextKey string

// UserIDKey carries the authenticated user's id (hex ObjectID) in the request context.
const UserIDKey contextKey = "user_id"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// RoomTypes is the fixed vocabulary for the roomType field.
var RoomTypes = []string{"1BHK", "2BHK", "3BHK", "4BHK", "5BHK"}

// PreferredTypes is the fixed vocabulary for preferredType elements.
var PreferredTypes = []string{"Student", "Male", "Female", "Professional", "Couple", "Any"}

// AllowedSortFields are the only sortBy values accepted by the list endpoint.
var AllowedSortFields = []string{"rent", "createdAt", "bedrooms", "bathrooms"}

// MaxPayloadBytes caps the serialized vacancy payload size (10 MiB).
const MaxPayloadBytes = 10 * 1024 * 1024
