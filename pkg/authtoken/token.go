package authtoken

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// SafetyMargin is subtracted from a token's remaining lifetime before it is
// considered usable, so requests never leave with a token about to expire.
const SafetyMargin = 30 * time.Second

// Role values embedded in access tokens.
const (
	RoleSuperAdmin  = "super_admin"
	RoleTenantAdmin = "tenant_admin"
	RoleUser        = "user"
)

// Identity is the authenticated principal held by the session store.
type Identity struct {
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Role      string  `json:"role"`
	Token     string  `json:"token"`
	TenantId  *string `json:"tenant_id,omitempty"`
}

type tokenPayload struct {
	Exp int64 `json:"exp"`
}

// ExpirationAt decodes the payload segment of a compact JWS token and returns
// the embedded expiration instant. It performs no signature verification and
// no network calls. Any malformed input yields ok=false, never an error.
func ExpirationAt(token string) (time.Time, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		// Some issuers pad the segment
		raw, err = base64.URLEncoding.DecodeString(parts[1])
		if err != nil {
			return time.Time{}, false
		}
	}

	var payload tokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return time.Time{}, false
	}
	if payload.Exp == 0 {
		return time.Time{}, false
	}

	return time.Unix(payload.Exp, 0), true
}

// IsUsable reports whether the token is still safe to attach to a request at
// the given instant: now + SafetyMargin must fall strictly before exp.
func IsUsable(token string, now time.Time) bool {
	exp, ok := ExpirationAt(token)
	if !ok {
		return false
	}
	return now.Add(SafetyMargin).Before(exp)
}

// IdentityUsable is the nil-safe check used by the session store and the
// request wrapper. A missing identity or empty credential is never usable.
func IdentityUsable(id *Identity, now time.Time) bool {
	if id == nil || id.Token == "" {
		return false
	}
	return IsUsable(id.Token, now)
}
