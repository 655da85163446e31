package handler

import (
	"time"

	"github.com/herovault/hero-api/internal/core/domain"
)

// Request/response types for the hero resource. Numeric fields bind as
// pointers so "explicitly zero" and "absent" stay distinguishable: health=0
// must fail the range rule, not the presence rule, and damage=0 or
// resistance=0.0 are valid values.
//
// Tag order mirrors the documented validation order; the validator reports
// presence failures across all fields before any range failure.

// errorResponse documents the error envelope rendered by the central error
// handler; referenced from the swagger annotations.
type errorResponse struct {
	Error string `json:"error"`
}

type createHeroRequest struct {
	Name       string   `json:"name"       validate:"required,max=50"`
	Style      string   `json:"style"      validate:"required,max=255"`
	Health     *float64 `json:"health"     validate:"required,gte=1000"`
	Damage     *float64 `json:"damage"     validate:"required,lte=100"`
	Resistance *float64 `json:"resistance" validate:"required,gte=0,lte=10"`
}

type updateHeroRequest struct {
	ID         *int64   `json:"id"`
	Name       string   `json:"name"       validate:"required,max=50"`
	Style      string   `json:"style"      validate:"required,max=255"`
	Health     *float64 `json:"health"     validate:"required,gte=1000"`
	Damage     *float64 `json:"damage"     validate:"required,lte=100"`
	Resistance *float64 `json:"resistance" validate:"required,gte=0,lte=10"`
}

// heroResponse is the wire shape of a single hero. Kept separate from the
// domain type so the JSON contract is not coupled to internal changes.
type heroResponse struct {
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

type heroEnvelope struct {
	Hero heroResponse `json:"hero"`
}

type heroListResponse struct {
	Heroes []heroResponse `json:"heroes"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toHeroResponse(h domain.Hero) heroResponse {
	return heroResponse{
		ID:         h.ID,
		OwnerID:    h.OwnerID,
		Name:       h.Name,
		Style:      h.Style,
		Health:     h.Health,
		Damage:     h.Damage,
		Resistance: h.Resistance,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}
