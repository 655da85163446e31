// Package domain holds the core entities and the sentinel errors the rest of
// the system branches on. Nothing here imports outside the standard library.
package domain

import (
	"errors"
	"time"
)

// ErrHeroNotFound covers both a genuinely missing hero and a hero owned by
// someone else. Callers must not be able to tell the two apart.
var ErrHeroNotFound = errors.New("hero not found")

// ErrUnauthenticated signals a request with no resolvable identity.
var ErrUnauthenticated = errors.New("unauthenticated")

// Stat bounds enforced at the transport edge.
const (
	NameMaxLen    = 50
	StyleMaxLen   = 255
	HealthMin     = 1000
	DamageMax     = 100
	ResistanceMin = 0.0
	ResistanceMax = 10.0
)

// Hero is a combat character owned by exactly one user. OwnerID is the opaque
// subject string taken from the session token; it never crosses trust
// boundaries as anything richer.
type Hero struct {
	ID         int64     `json:"id"`
	OwnerID    string    `json:"ownerId"`
	Name       string    `json:"name"`
	Style      string    `json:"style"`
	Health     int       `json:"health"`
	Damage     int       `json:"damage"`
	Resistance float64   `json:"resistance"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
