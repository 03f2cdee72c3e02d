package models

import (
	"time"
)

// DrawStatus is the lifecycle state of an official draw result
type DrawStatus string

const (
	// DrawStatusPending is a provisional result that is not yet authoritative
	DrawStatusPending DrawStatus = "pending"

	// DrawStatusPublished is the authoritative result for its period
	DrawStatusPublished DrawStatus = "published"

	// DrawStatusDeprecated is a withdrawn result. It is terminal.
	DrawStatusDeprecated DrawStatus = "deprecated"
)

// IsValid reports whether s is a known status
func (s DrawStatus) IsValid() bool {
	switch s {
	case DrawStatusPending, DrawStatusPublished, DrawStatusDeprecated:
		return true
	}
	return false
}

// CanTransitionTo reports whether the state machine allows s -> next
func (s DrawStatus) CanTransitionTo(next DrawStatus) bool {
	switch s {
	case DrawStatusPending:
		return next == DrawStatusPublished || next == DrawStatusDeprecated
	case DrawStatusPublished:
		return next == DrawStatusDeprecated
	default:
		return false
	}
}

// Draw is an official result row ("spot") for a period.
// Several rows may exist per period; at most one of them is published.
type Draw struct {
	// ID is the unique identifier for the draw
	ID string `json:"id"`

	// Period is the draw cycle label
	Period string `json:"period"`

	// Numbers are the drawn red and blue numbers
	Numbers NumberSet `json:"numbers"`

	// Multiplier scales the base prize amounts
	Multiplier int `json:"multiplier"`

	// Status is the lifecycle state
	Status DrawStatus `json:"status"`

	// CreatedAt is when the row was recorded
	CreatedAt time.Time `json:"created_at"`

	// ModifiedAt changes on every status transition
	ModifiedAt time.Time `json:"modified_at"`
}

// Transition moves the draw to next, stamping ModifiedAt
func (d *Draw) Transition(next DrawStatus, at time.Time) error {
	if !d.Status.CanTransitionTo(next) {
		return &TransitionError{DrawID: d.ID, From: d.Status, To: next}
	}
	d.Status = next
	d.ModifiedAt = at
	return nil
}

// IsDeprecated reports whether the draw was withdrawn
func (d *Draw) IsDeprecated() bool {
	return d.Status == DrawStatusDeprecated
}

// ValidateMultiplier rejects multipliers below one
func ValidateMultiplier(multiplier int) error {
	if multiplier < 1 {
		return &ValidationError{Kind: ValidationInvalidMultiplier, Field: FieldMultiplier, Value: multiplier}
	}
	return nil
}
