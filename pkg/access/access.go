package access

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrNotOwner      = errors.New("caller is not the owner")
	ErrAdminRequired = errors.New("caller is not the registry admin")
	ErrMissingCaller = errors.New("missing or invalid caller id")
)

// CallerHeader carries the authenticated caller identity on every request.
const CallerHeader = "X-Caller-ID"

// Decision is the result of an authorization check. Checks are evaluated
// before any state mutation; a denied decision carries the rejection kind.
type Decision struct {
	Allowed bool
	Reason  error
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason error) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Err returns nil for an allowed decision, the denial reason otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return d.Reason
}

// CheckOwner authorizes an owner-restricted operation.
func CheckOwner(caller, owner string) Decision {
	if caller != owner {
		return Deny(ErrNotOwner)
	}
	return Allow()
}

// CheckAdmin authorizes an admin-restricted operation.
func CheckAdmin(caller, admin string) Decision {
	if admin == "" || caller != admin {
		return Deny(ErrAdminRequired)
	}
	return Allow()
}

// CallerID extracts and validates the caller UUID from the request header.
func CallerID(c *gin.Context) (string, error) {
	raw := c.GetHeader(CallerHeader)
	if raw == "" {
		return "", ErrMissingCaller
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrMissingCaller
	}
	return id.String(), nil
}
