package models

import (
	"fmt"
	"time"
)

// PrizeTier is a prize classification. Tier1 is the highest; NoPrize is zero.
type PrizeTier int

const (
	NoPrize PrizeTier = iota
	Tier1
	Tier2
	Tier3
	Tier4
	Tier5
	Tier6
)

// Tiers lists every tier from highest to NoPrize
var Tiers = []PrizeTier{Tier1, Tier2, Tier3, Tier4, Tier5, Tier6, NoPrize}

// String implements fmt.Stringer
func (t PrizeTier) String() string {
	if t == NoPrize {
		return "no_prize"
	}
	return fmt.Sprintf("tier%d", int(t))
}

// IsWinning reports whether the tier pays anything
func (t PrizeTier) IsWinning() bool {
	return t >= Tier1 && t <= Tier6
}

// MarshalText implements encoding.TextMarshaler
func (t PrizeTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *PrizeTier) UnmarshalText(text []byte) error {
	for _, tier := range Tiers {
		if tier.String() == string(text) {
			*t = tier
			return nil
		}
	}
	return fmt.Errorf("unknown prize tier %q", string(text))
}

// Payout is the amount a tier pays at a given multiplier.
// Jackpot marks a Tier1 win whose amount is pooled and decided outside this engine; Units is zero then.
type Payout struct {
	Units   int64 `json:"units"`
	Jackpot bool  `json:"jackpot"`
}

// SettlementOutcome is the prize computed for one ticket against one draw
type SettlementOutcome struct {
	// TicketID is the settled ticket
	TicketID string `json:"ticket_id"`

	// DrawID is the published draw the ticket was settled against
	DrawID string `json:"draw_id"`

	// Period is the draw cycle shared by the ticket and draw
	Period string `json:"period"`

	// Tier is the prize classification
	Tier PrizeTier `json:"tier"`

	// PayoutUnits is the base amount times the draw multiplier (0 for jackpots)
	PayoutUnits int64 `json:"payout_units"`

	// Jackpot is set for Tier1 wins
	Jackpot bool `json:"jackpot"`

	// SettledAt is when the outcome was computed
	SettledAt time.Time `json:"settled_at"`
}

// SameResult reports whether two outcomes agree on everything but SettledAt
func (o *SettlementOutcome) SameResult(other *SettlementOutcome) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.TicketID == other.TicketID &&
		o.DrawID == other.DrawID &&
		o.Period == other.Period &&
		o.Tier == other.Tier &&
		o.PayoutUnits == other.PayoutUnits &&
		o.Jackpot == other.Jackpot
}
