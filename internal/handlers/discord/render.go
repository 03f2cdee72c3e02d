package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dball/internal/models"
	"github.com/KirkDiggler/dball/internal/services/draw"
	"github.com/KirkDiggler/dball/internal/services/reconcile"
	"github.com/KirkDiggler/dball/internal/services/ticket"
)

func numbersField(n models.NumberSet) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{
		Name:  "Numbers",
		Value: "`" + n.String() + "`",
	}
}

func renderTicket(t *models.Ticket) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Ticket purchased 🎟️",
		Description: fmt.Sprintf("Period **%s**", t.Period),
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			numbersField(t.Numbers),
			{Name: "Ticket ID", Value: t.ID},
		},
	}
}

func renderDraw(d *models.Draw, title string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("Period **%s**", d.Period),
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			numbersField(d.Numbers),
			{Name: "Multiplier", Value: fmt.Sprintf("x%d", d.Multiplier), Inline: true},
			{Name: "Status", Value: string(d.Status), Inline: true},
			{Name: "Draw ID", Value: d.ID},
		},
	}
}

func renderPublish(out *draw.PublishDrawOutput) *discordgo.MessageEmbed {
	embed := renderDraw(out.Draw, "Draw published 📣")
	embed.Color = colorSuccess

	if len(out.Superseded) > 0 {
		ids := make([]string, len(out.Superseded))
		for i, d := range out.Superseded {
			ids[i] = d.ID
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Superseded",
			Value: strings.Join(ids, "\n"),
		})
	}

	return embed
}

func renderDeprecate(out *draw.DeprecateDrawOutput) *discordgo.MessageEmbed {
	embed := renderDraw(out.Draw, "Draw withdrawn")
	embed.Color = colorWarning
	if out.WasPublished {
		embed.Description += "\nThis period has no published result until another draw is published."
	}
	return embed
}

func tierLabel(tier models.PrizeTier) string {
	if tier == models.NoPrize {
		return "No prize"
	}
	return fmt.Sprintf("Tier %d", int(tier))
}

func renderOutcome(o *models.SettlementOutcome) *discordgo.MessageEmbed {
	payout := fmt.Sprintf("%d units", o.PayoutUnits)
	if o.Jackpot {
		payout = "Jackpot 💰"
	}

	color := colorInfo
	if o.Tier.IsWinning() {
		color = colorSuccess
	}

	return &discordgo.MessageEmbed{
		Title:       tierLabel(o.Tier),
		Description: fmt.Sprintf("Ticket %s in period **%s**", o.TicketID, o.Period),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Payout", Value: payout, Inline: true},
			{Name: "Draw ID", Value: o.DrawID, Inline: true},
		},
	}
}

func renderResettle(out *reconcile.ResettlePeriodOutput) *discordgo.MessageEmbed {
	var summary strings.Builder
	for _, tier := range models.Tiers {
		if count := out.Summary[tier]; count > 0 {
			fmt.Fprintf(&summary, "%s: %d\n", tierLabel(tier), count)
		}
	}
	if summary.Len() == 0 {
		summary.WriteString("No tickets")
	}

	description := fmt.Sprintf("Period **%s** settled against draw %s", out.Period, out.DrawID)
	if out.Recorded {
		description += " and recorded"
	}

	return &discordgo.MessageEmbed{
		Title:       "Period resettled",
		Description: description,
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Tickets", Value: fmt.Sprintf("%d", len(out.Outcomes)), Inline: true},
			{Name: "Total payout", Value: fmt.Sprintf("%d units", out.TotalUnits), Inline: true},
			{Name: "Jackpots", Value: fmt.Sprintf("%d", out.Jackpots), Inline: true},
			{Name: "Summary", Value: strings.TrimSpace(summary.String())},
		},
	}
}

// maxListedTickets keeps a ticket list inside an embed description
const maxListedTickets = 20

func renderTicketList(title string, tickets []*models.Ticket) *discordgo.MessageEmbed {
	if len(tickets) == 0 {
		return &discordgo.MessageEmbed{
			Title:       title,
			Description: "No tickets",
			Color:       colorInfo,
		}
	}

	var lines strings.Builder
	for i, t := range tickets {
		if i == maxListedTickets {
			fmt.Fprintf(&lines, "...and %d more", len(tickets)-maxListedTickets)
			break
		}
		fmt.Fprintf(&lines, "**%s** `%s` %s\n", t.Period, t.Numbers.String(), t.ID)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: strings.TrimSpace(lines.String()),
		Color:       colorInfo,
	}
}

func renderStats(period string, tickets, draws int64) *discordgo.MessageEmbed {
	description := "All periods"
	if period != "" {
		description = fmt.Sprintf("Period **%s**", period)
	}

	return &discordgo.MessageEmbed{
		Title:       "Stats",
		Description: description,
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Tickets", Value: fmt.Sprintf("%d", tickets), Inline: true},
			{Name: "Draws", Value: fmt.Sprintf("%d", draws), Inline: true},
		},
	}
}

// errorMessage turns a domain error into something a channel member can act on
func errorMessage(err error) string {
	var validation *models.ValidationError
	switch {
	case errors.As(err, &validation):
		return "Invalid input: " + validation.Error()
	case errors.Is(err, models.ErrDuplicateTicket):
		return "That ticket was already bought for this period."
	case errors.Is(err, models.ErrTicketNotFound):
		return "Ticket not found."
	case errors.Is(err, models.ErrDrawNotFound):
		return "Draw not found."
	case errors.Is(err, models.ErrInvalidTransition):
		return err.Error()
	case errors.Is(err, models.ErrNoAuthoritativeDraw):
		return "This period has no published draw yet."
	case errors.Is(err, models.ErrInvariantViolation):
		return "This period has conflicting published draws. An operator has to fix it before settling."
	case errors.Is(err, models.ErrStorageUnavailable):
		return "Storage is unavailable, try again shortly."
	case errors.Is(err, reconcile.ErrHistoryNotEnabled):
		return "Settlement history is not enabled."
	case errors.Is(err, ticket.ErrMissingNumber):
		return "Give a red number, a blue number, or both."
	case errors.Is(err, ticket.ErrInvalidLimit):
		return "Limit must be between 1 and 100."
	}
	return "Something went wrong: " + err.Error()
}
