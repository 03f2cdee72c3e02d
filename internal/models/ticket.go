package models

import (
	"strings"
	"time"
)

// Ticket is a purchased bet for one draw period
type Ticket struct {
	// ID is the unique identifier for the ticket
	ID string `json:"id"`

	// Period is the draw cycle label the ticket was bought for
	Period string `json:"period"`

	// Numbers are the picked red and blue numbers
	Numbers NumberSet `json:"numbers"`

	// PurchasedAt is when the ticket was bought
	PurchasedAt time.Time `json:"purchased_at"`
}

// UniqueKey identifies the (period, numbers) pair a ticket must not share with another ticket
func (t *Ticket) UniqueKey() string {
	return t.Period + ":" + t.Numbers.Key()
}

// ValidatePeriod rejects blank period labels
func ValidatePeriod(period string) error {
	if strings.TrimSpace(period) == "" {
		return &ValidationError{Kind: ValidationEmptyPeriod, Field: FieldPeriod}
	}
	return nil
}
