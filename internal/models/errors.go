package models

import "fmt"

// Error is a domain error shared by the repositories, services and handlers
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrDuplicateTicket     Error = "ticket already exists for this period and numbers"
	ErrInvalidTransition   Error = "invalid draw status transition"
	ErrNoAuthoritativeDraw Error = "no published draw for period"
	ErrInvariantViolation  Error = "more than one published draw for period"
	ErrStorageUnavailable  Error = "storage unavailable"
	ErrTicketNotFound      Error = "ticket not found"
	ErrDrawNotFound        Error = "draw not found"
	ErrSettlementNotFound  Error = "settlement not found"
)

// ValidationKind identifies which input rule was broken
type ValidationKind string

const (
	// ValidationWrongCount means the red pool did not contain exactly six numbers
	ValidationWrongCount ValidationKind = "wrong_count"

	// ValidationDuplicate means a red number was repeated
	ValidationDuplicate ValidationKind = "duplicate"

	// ValidationOutOfRange means a red or blue number fell outside its pool
	ValidationOutOfRange ValidationKind = "out_of_range"

	// ValidationEmptyPeriod means the period label was blank
	ValidationEmptyPeriod ValidationKind = "empty_period"

	// ValidationInvalidMultiplier means a draw multiplier was below one
	ValidationInvalidMultiplier ValidationKind = "invalid_multiplier"
)

// ValidationError reports malformed caller input. It is never coerced.
type ValidationError struct {
	// Kind is the rule that failed
	Kind ValidationKind

	// Field names the offending input ("red", "blue", "period", "multiplier")
	Field string

	// Value is the offending value (the count for wrong_count)
	Value int
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	switch e.Kind {
	case ValidationWrongCount:
		return fmt.Sprintf("invalid number of red balls: expected %d, got %d", RedCount, e.Value)
	case ValidationDuplicate:
		return fmt.Sprintf("duplicate red ball %d", e.Value)
	case ValidationOutOfRange:
		if e.Field == FieldBlue {
			return fmt.Sprintf("blue ball %d is out of range (%d-%d)", e.Value, BlueMin, BlueMax)
		}
		return fmt.Sprintf("red ball %d is out of range (%d-%d)", e.Value, RedMin, RedMax)
	case ValidationEmptyPeriod:
		return "period cannot be empty"
	case ValidationInvalidMultiplier:
		return fmt.Sprintf("multiplier must be at least 1, got %d", e.Value)
	default:
		return fmt.Sprintf("invalid %s: %d", e.Field, e.Value)
	}
}

// TransitionError is returned when a draw status change is not allowed
type TransitionError struct {
	DrawID string
	From   DrawStatus
	To     DrawStatus
}

// Error implements the error interface
func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: draw %s cannot move from %s to %s", ErrInvalidTransition, e.DrawID, e.From, e.To)
}

// Is lets errors.Is(err, ErrInvalidTransition) match any TransitionError
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// StorageError marks err as a storage failure so callers can match ErrStorageUnavailable
// while the cause stays reachable through errors.Is/As
func StorageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}
