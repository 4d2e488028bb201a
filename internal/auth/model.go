package auth

// Roles in the supply chain.
const (
	RoleVendor = "VENDOR" // market seller (UMKM)
	RoleSPPG   = "SPPG"   // central kitchen
	RoleAdmin  = "ADMIN"
)

// User is the domain entity. Latitude/Longitude are the stall or kitchen
// location; nil when the user never shared GPS.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      string
	Latitude  *float64
	Longitude *float64
}
