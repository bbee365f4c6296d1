// Package roles derives privilege tiers from Firebase custom claims.
//
// A role is never stored: it is computed once per request from the verified
// claim set carried by the ID token. Because claims are snapshotted at token
// issuance, a revoked claim stays effective until the token expires or is
// refreshed; that staleness window is an accepted property of token-based
// auth, not something this package tries to compensate for.
package roles

// Claims is the custom-claim set attached to a Firebase account.
// SuperAdmin accounts always also carry Admin; the provider enforces this
// at claim-set time.
type Claims struct {
	Admin      bool `json:"admin" firestore:"admin"`
	SuperAdmin bool `json:"superAdmin" firestore:"superAdmin"`
}

// Role is a closed privilege tier with a total order:
// User < Admin < SuperAdmin.
type Role int

const (
	User Role = iota
	Admin
	SuperAdmin
)

// String returns the wire name of the role, matching the claim keys the
// dashboard client checks.
func (r Role) String() string {
	switch r {
	case SuperAdmin:
		return "superAdmin"
	case Admin:
		return "admin"
	default:
		return "user"
	}
}

// AtLeast reports whether r grants at least the privileges of min.
func (r Role) AtLeast(min Role) bool {
	return r >= min
}

// FromClaims resolves the role for a claim set. SuperAdmin wins over Admin.
func FromClaims(c Claims) Role {
	switch {
	case c.SuperAdmin:
		return SuperAdmin
	case c.Admin:
		return Admin
	default:
		return User
	}
}

// ClaimsFromToken extracts the admin claims from a decoded token claim map.
// Absent or non-boolean values are treated as false (fail-closed).
func ClaimsFromToken(tokenClaims map[string]interface{}) Claims {
	admin, _ := tokenClaims["admin"].(bool)
	superAdmin, _ := tokenClaims["superAdmin"].(bool)
	return Claims{Admin: admin, SuperAdmin: superAdmin}
}

// ToClaimsMap converts Claims to the map shape Firebase expects for
// SetCustomUserClaims. Setting claims replaces the whole custom claim map.
func (c Claims) ToClaimsMap() map[string]interface{} {
	return map[string]interface{}{
		"admin":      c.Admin,
		"superAdmin": c.SuperAdmin,
	}
}
