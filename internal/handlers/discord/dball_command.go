package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dball/internal/services/draw"
	"github.com/KirkDiggler/dball/internal/services/reconcile"
	"github.com/KirkDiggler/dball/internal/services/ticket"
)

// Subcommand names
const (
	SubcommandBuy       = "buy"
	SubcommandQuickPick = "quickpick"
	SubcommandDraw      = "draw"
	SubcommandPublish   = "publish"
	SubcommandDeprecate = "deprecate"
	SubcommandSettle    = "settle"
	SubcommandResettle  = "resettle"
	SubcommandFind      = "find"
	SubcommandLatest    = "latest"
	SubcommandStats     = "stats"
)

// DballCommand handles the /dball command
type DballCommand struct {
	BaseCommand
	tickets    ticket.Service
	draws      draw.Service
	reconciler reconcile.Service
	log        logrus.FieldLogger
}

func periodOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "period",
		Description: "Draw period, e.g. 2024001",
		Required:    true,
	}
}

func numberOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		periodOption(),
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reds",
			Description: "Six red numbers 1-33, separated by spaces or commas",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "blue",
			Description: "Blue number 1-16",
			Required:    true,
		},
	}
}

func idOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    true,
	}
}

// NewDballCommand creates a new dball command handler
func NewDballCommand(tickets ticket.Service, draws draw.Service, reconciler reconcile.Service, log logrus.FieldLogger) *DballCommand {
	if log == nil {
		log = logrus.StandardLogger()
	}

	drawOptions := append(numberOptions(), &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "multiplier",
		Description: "Payout multiplier, defaults to 1",
	})

	return &DballCommand{
		BaseCommand: BaseCommand{
			Name:        "dball",
			Description: "Double color ball tickets and draws",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandBuy,
					Description: "Buy a ticket",
					Options:     numberOptions(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandQuickPick,
					Description: "Buy a ticket with random numbers",
					Options:     []*discordgo.ApplicationCommandOption{periodOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandDraw,
					Description: "Record a pending draw result",
					Options:     drawOptions,
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandPublish,
					Description: "Publish a pending draw",
					Options:     []*discordgo.ApplicationCommandOption{idOption("draw_id", "Draw to publish")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandDeprecate,
					Description: "Withdraw a draw",
					Options:     []*discordgo.ApplicationCommandOption{idOption("draw_id", "Draw to withdraw")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandSettle,
					Description: "Check one ticket against the published draw",
					Options:     []*discordgo.ApplicationCommandOption{idOption("ticket_id", "Ticket to settle")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandResettle,
					Description: "Settle every ticket of a period",
					Options: []*discordgo.ApplicationCommandOption{
						periodOption(),
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "record",
							Description: "Overwrite the stored settlement history",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandFind,
					Description: "Find tickets holding a red number, a blue number, or both",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "red",
							Description: "Red number 1-33",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "blue",
							Description: "Blue number 1-16",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandLatest,
					Description: "Show the most recent tickets",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "limit",
							Description: "How many tickets, defaults to 10",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStats,
					Description: "Count tickets and draws",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "period",
							Description: "Only this period, e.g. 2024001",
						},
					},
				},
			},
		},
		tickets:    tickets,
		draws:      draws,
		reconciler: reconciler,
		log:        log.WithField("command", "dball"),
	}
}

// Handle processes a Discord interaction for the dball command
func (c *DballCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	embed, err := c.execute(context.Background(), sub.Name, newOptionMap(sub.Options))
	if err != nil {
		c.log.WithError(err).WithField("subcommand", sub.Name).Warn("Command failed")
		return RespondWithError(s, i, errorMessage(err))
	}

	return RespondWithEmbed(s, i, embed)
}

// execute runs a subcommand and renders its result
func (c *DballCommand) execute(ctx context.Context, sub string, opts optionMap) (*discordgo.MessageEmbed, error) {
	switch sub {
	case SubcommandBuy:
		reds, err := parseReds(opts.String("reds"))
		if err != nil {
			return nil, err
		}
		out, err := c.tickets.PurchaseTicket(ctx, &ticket.PurchaseTicketInput{
			Period: opts.String("period"),
			Reds:   reds,
			Blue:   opts.Int("blue", 0),
		})
		if err != nil {
			return nil, err
		}
		return renderTicket(out.Ticket), nil

	case SubcommandQuickPick:
		out, err := c.tickets.PurchaseTicket(ctx, &ticket.PurchaseTicketInput{
			Period:    opts.String("period"),
			QuickPick: true,
		})
		if err != nil {
			return nil, err
		}
		return renderTicket(out.Ticket), nil

	case SubcommandDraw:
		reds, err := parseReds(opts.String("reds"))
		if err != nil {
			return nil, err
		}
		out, err := c.draws.RecordDraw(ctx, &draw.RecordDrawInput{
			Period:     opts.String("period"),
			Reds:       reds,
			Blue:       opts.Int("blue", 0),
			Multiplier: opts.Int("multiplier", 1),
		})
		if err != nil {
			return nil, err
		}
		return renderDraw(out.Draw, "Draw recorded"), nil

	case SubcommandPublish:
		out, err := c.draws.PublishDraw(ctx, &draw.PublishDrawInput{DrawID: opts.String("draw_id")})
		if err != nil {
			return nil, err
		}
		return renderPublish(out), nil

	case SubcommandDeprecate:
		out, err := c.draws.DeprecateDraw(ctx, &draw.DeprecateDrawInput{DrawID: opts.String("draw_id")})
		if err != nil {
			return nil, err
		}
		return renderDeprecate(out), nil

	case SubcommandSettle:
		out, err := c.reconciler.Settle(ctx, &reconcile.SettleInput{TicketID: opts.String("ticket_id")})
		if err != nil {
			return nil, err
		}
		return renderOutcome(out.Outcome), nil

	case SubcommandResettle:
		out, err := c.reconciler.ResettlePeriod(ctx, &reconcile.ResettlePeriodInput{
			Period: opts.String("period"),
			Record: opts.Bool("record"),
		})
		if err != nil {
			return nil, err
		}
		return renderResettle(out), nil

	case SubcommandFind:
		out, err := c.tickets.FindTickets(ctx, &ticket.FindTicketsInput{
			Red:  opts.Int("red", 0),
			Blue: opts.Int("blue", 0),
		})
		if err != nil {
			return nil, err
		}
		return renderTicketList("Matching tickets", out.Tickets), nil

	case SubcommandLatest:
		out, err := c.tickets.ListLatestTickets(ctx, &ticket.ListLatestTicketsInput{Limit: opts.Int("limit", 0)})
		if err != nil {
			return nil, err
		}
		return renderTicketList("Latest tickets", out.Tickets), nil

	case SubcommandStats:
		period := opts.String("period")
		tickets, err := c.tickets.CountTickets(ctx, &ticket.CountTicketsInput{Period: period})
		if err != nil {
			return nil, err
		}
		draws, err := c.draws.CountDraws(ctx, &draw.CountDrawsInput{Period: period})
		if err != nil {
			return nil, err
		}
		return renderStats(period, tickets.Count, draws.Count), nil
	}

	return nil, fmt.Errorf("unknown subcommand %q", sub)
}

// parseReds reads red numbers separated by spaces and/or commas.
// Count, range and duplicate checks are left to the services.
func parseReds(raw string) ([]int, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	reds := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", f)
		}
		reds = append(reds, n)
	}

	return reds, nil
}
