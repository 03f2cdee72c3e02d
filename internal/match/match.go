// Package match classifies a ticket against a draw and prices the result.
// Everything here is pure and safe for concurrent use.
package match

import "github.com/KirkDiggler/dball/internal/models"

// baseUnits is the fixed prize per tier at multiplier 1. Tier1 is pooled and priced elsewhere.
var baseUnits = map[models.PrizeTier]int64{
	models.Tier2: 150_000,
	models.Tier3: 3_000,
	models.Tier4: 200,
	models.Tier5: 10,
	models.Tier6: 5,
}

// Matches counts shared red numbers and whether the blue numbers agree
func Matches(ticket, draw models.NumberSet) (reds int, blue bool) {
	for _, r := range ticket.Reds() {
		if draw.ContainsRed(r) {
			reds++
		}
	}
	return reds, ticket.Blue() == draw.Blue()
}

// Classify maps a ticket's numbers against the drawn numbers to a prize tier
func Classify(ticket, draw models.NumberSet) models.PrizeTier {
	reds, blue := Matches(ticket, draw)
	return Tier(reds, blue)
}

// Tier is the decision table behind Classify. Every (reds, blue) pair maps to exactly one tier.
func Tier(reds int, blue bool) models.PrizeTier {
	switch {
	case reds == 6 && blue:
		return models.Tier1
	case reds == 6:
		return models.Tier2
	case reds == 5 && blue:
		return models.Tier3
	case reds == 5, reds == 4 && blue:
		return models.Tier4
	case reds == 4, reds == 3 && blue:
		return models.Tier5
	case blue && reds <= 2:
		return models.Tier6
	default:
		return models.NoPrize
	}
}

// BaseUnits returns the multiplier-1 amount for a tier; jackpot is true for Tier1
func BaseUnits(tier models.PrizeTier) (units int64, jackpot bool) {
	if tier == models.Tier1 {
		return 0, true
	}
	return baseUnits[tier], false
}

// Payout prices a tier at the given multiplier.
// NoPrize and multipliers below one always pay zero units.
func Payout(tier models.PrizeTier, multiplier int) models.Payout {
	units, jackpot := BaseUnits(tier)
	if jackpot {
		return models.Payout{Jackpot: true}
	}
	if multiplier < 1 {
		return models.Payout{}
	}
	return models.Payout{Units: units * int64(multiplier)}
}
