package discord

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dball/internal/models"
	"github.com/KirkDiggler/dball/internal/services/draw"
	mockDraw "github.com/KirkDiggler/dball/internal/services/draw/mocks"
	"github.com/KirkDiggler/dball/internal/services/reconcile"
	mockReconcile "github.com/KirkDiggler/dball/internal/services/reconcile/mocks"
	"github.com/KirkDiggler/dball/internal/services/ticket"
	mockTicket "github.com/KirkDiggler/dball/internal/services/ticket/mocks"
)

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

// Discord delivers integer options as JSON numbers
func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func boolOpt(name string, value bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionBoolean,
		Value: value,
	}
}

func opts(options ...*discordgo.ApplicationCommandInteractionDataOption) optionMap {
	return newOptionMap(options)
}

type DballCommandTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockTickets    *mockTicket.MockService
	mockDraws      *mockDraw.MockService
	mockReconciler *mockReconcile.MockService
	cmd            *DballCommand
	ctx            context.Context
	now            time.Time
}

func (s *DballCommandTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTickets = mockTicket.NewMockService(s.ctrl)
	s.mockDraws = mockDraw.NewMockService(s.ctrl)
	s.mockReconciler = mockReconcile.NewMockService(s.ctrl)
	logger, _ := test.NewNullLogger()
	s.cmd = NewDballCommand(s.mockTickets, s.mockDraws, s.mockReconciler, logger)
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 2, 21, 15, 0, 0, time.UTC)
}

func (s *DballCommandTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DballCommandTestSuite) drawFixture(id string, status models.DrawStatus) *models.Draw {
	return &models.Draw{
		ID:         id,
		Period:     "2024001",
		Numbers:    models.MustNumberSet([]int{1, 2, 3, 4, 5, 6}, 7),
		Multiplier: 2,
		Status:     status,
		CreatedAt:  s.now,
		ModifiedAt: s.now,
	}
}

func (s *DballCommandTestSuite) TestCommandDefinition() {
	def := s.cmd.GetCommand()
	s.Equal("dball", def.Name)

	names := make([]string, len(def.Options))
	for i, opt := range def.Options {
		names[i] = opt.Name
		s.Equal(discordgo.ApplicationCommandOptionSubCommand, opt.Type)
	}
	s.Equal([]string{
		SubcommandBuy, SubcommandQuickPick, SubcommandDraw, SubcommandPublish,
		SubcommandDeprecate, SubcommandSettle, SubcommandResettle,
		SubcommandFind, SubcommandLatest, SubcommandStats,
	}, names)
}

func (s *DballCommandTestSuite) TestBuy() {
	s.mockTickets.EXPECT().
		PurchaseTicket(s.ctx, &ticket.PurchaseTicketInput{
			Period: "2024001",
			Reds:   []int{33, 1, 2, 3, 4, 5},
			Blue:   16,
		}).
		Return(&ticket.PurchaseTicketOutput{Ticket: &models.Ticket{
			ID:          "tkt_1",
			Period:      "2024001",
			Numbers:     models.MustNumberSet([]int{33, 1, 2, 3, 4, 5}, 16),
			PurchasedAt: s.now,
		}}, nil)

	embed, err := s.cmd.execute(s.ctx, SubcommandBuy, opts(
		stringOpt("period", "2024001"),
		stringOpt("reds", "33, 1 2,3 4 5"),
		intOpt("blue", 16),
	))
	s.Require().NoError(err)
	s.Contains(embed.Description, "2024001")
	s.Equal("`01 02 03 04 05 33 | 16`", embed.Fields[0].Value)
}

func (s *DballCommandTestSuite) TestQuickPick() {
	s.mockTickets.EXPECT().
		PurchaseTicket(s.ctx, &ticket.PurchaseTicketInput{Period: "2024001", QuickPick: true}).
		Return(&ticket.PurchaseTicketOutput{Ticket: &models.Ticket{
			ID:      "tkt_9",
			Period:  "2024001",
			Numbers: models.MustNumberSet([]int{4, 9, 15, 22, 28, 31}, 3),
		}}, nil)

	embed, err := s.cmd.execute(s.ctx, SubcommandQuickPick, opts(stringOpt("period", "2024001")))
	s.Require().NoError(err)
	s.Equal("tkt_9", embed.Fields[1].Value)
}

func (s *DballCommandTestSuite) TestBuyUnparseableReds() {
	_, err := s.cmd.execute(s.ctx, SubcommandBuy, opts(
		stringOpt("period", "2024001"),
		stringOpt("reds", "1 2 three 4 5 6"),
		intOpt("blue", 1),
	))
	s.Error(err)
}

func (s *DballCommandTestSuite) TestBuyDuplicate() {
	s.mockTickets.EXPECT().
		PurchaseTicket(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrDuplicateTicket)

	_, err := s.cmd.execute(s.ctx, SubcommandBuy, opts(
		stringOpt("period", "2024001"),
		stringOpt("reds", "1 2 3 4 5 6"),
		intOpt("blue", 1),
	))
	s.ErrorIs(err, models.ErrDuplicateTicket)
	s.Equal("That ticket was already bought for this period.", errorMessage(err))
}

func (s *DballCommandTestSuite) TestDrawDefaultsMultiplier() {
	s.mockDraws.EXPECT().
		RecordDraw(s.ctx, &draw.RecordDrawInput{
			Period:     "2024001",
			Reds:       []int{1, 2, 3, 4, 5, 6},
			Blue:       7,
			Multiplier: 1,
		}).
		Return(&draw.RecordDrawOutput{Draw: s.drawFixture("drw_1", models.DrawStatusPending)}, nil)

	embed, err := s.cmd.execute(s.ctx, SubcommandDraw, opts(
		stringOpt("period", "2024001"),
		stringOpt("reds", "1,2,3,4,5,6"),
		intOpt("blue", 7),
	))
	s.Require().NoError(err)
	s.Equal("Draw recorded", embed.Title)
}

func (s *DballCommandTestSuite) TestPublishListsSuperseded() {
	s.mockDraws.EXPECT().
		PublishDraw(s.ctx, &draw.PublishDrawInput{DrawID: "drw_2"}).
		Return(&draw.PublishDrawOutput{
			Draw:       s.drawFixture("drw_2", models.DrawStatusPublished),
			Superseded: []*models.Draw{s.drawFixture("drw_1", models.DrawStatusDeprecated)},
		}, nil)

	embed, err := s.cmd.execute(s.ctx, SubcommandPublish, opts(stringOpt("draw_id", "drw_2")))
	s.Require().NoError(err)

	last := embed.Fields[len(embed.Fields)-1]
	s.Equal("Superseded", last.Name)
	s.Equal("drw_1", last.Value)
}

func (s *DballCommandTestSuite) TestDeprecatePublished() {
	s.mockDraws.EXPECT().
		DeprecateDraw(s.ctx, &draw.DeprecateDrawInput{DrawID: "drw_1"}).
		Return(&draw.DeprecateDrawOutput{
			Draw:         s.drawFixture("drw_1", models.DrawStatusDeprecated),
			WasPublished: true,
		}, nil)

	embed, err := s.cmd.execute(s.ctx, SubcommandDeprecate, opts(stringOpt("draw_id", "drw_1")))
	s.Require().NoError(err)
	s.Contains(embed.Description, "no published result")
}

func (s *DballCommandTestSuite) TestSettle() {
	s.mockReconciler.EXPECT().
		Settle(s.ctx, &reconcile.SettleInput{TicketID: "tkt_1"}).
		Return(&reconcile.SettleOutput{Outcome: &models.SettlementOutcome{
			TicketID: "tkt_1",
			DrawID:   "drw_1",
			Period:   "2024001",
			Tier:     models.Tier1,
			Jackpot:  true,
		}}, nil)

	embed, err := s.cmd.execute(s.ctx, SubcommandSettle, opts(stringOpt("ticket_id", "tkt_1")))
	s.Require().NoError(err)
	s.Equal("Tier 1", embed.Title)
	s.Equal("Jackpot 💰", embed.Fields[0].Value)
}

func (s *DballCommandTestSuite) TestSettleNoDraw() {
	s.mockReconciler.EXPECT().
		Settle(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrNoAuthoritativeDraw)

	_, err := s.cmd.execute(s.ctx, SubcommandSettle, opts(stringOpt("ticket_id", "tkt_1")))
	s.Equal("This period has no published draw yet.", errorMessage(err))
}

func (s *DballCommandTestSuite) TestResettle() {
	s.mockReconciler.EXPECT().
		ResettlePeriod(s.ctx, &reconcile.ResettlePeriodInput{Period: "2024001", Record: true}).
		Return(&reconcile.ResettlePeriodOutput{
			Period:     "2024001",
			DrawID:     "drw_1",
			Outcomes:   make([]*models.SettlementOutcome, 3),
			Summary:    map[models.PrizeTier]int{models.Tier6: 2, models.NoPrize: 1},
			TotalUnits: 10,
			Recorded:   true,
		}, nil)

	embed, err := s.cmd.execute(s.ctx, SubcommandResettle, opts(
		stringOpt("period", "2024001"),
		boolOpt("record", true),
	))
	s.Require().NoError(err)
	s.Contains(embed.Description, "recorded")
	s.Equal("3", embed.Fields[0].Value)
	s.Equal("Tier 6: 2\nNo prize: 1", embed.Fields[3].Value)
}

func (s *DballCommandTestSuite) ticketFixture(id, period string) *models.Ticket {
	return &models.Ticket{
		ID:          id,
		Period:      period,
		Numbers:     models.MustNumberSet([]int{7, 1, 2, 3, 4, 5}, 12),
		PurchasedAt: s.now,
	}
}

func (s *DballCommandTestSuite) TestFind() {
	s.mockTickets.EXPECT().
		FindTickets(s.ctx, &ticket.FindTicketsInput{Red: 7}).
		Return(&ticket.FindTicketsOutput{Tickets: []*models.Ticket{
			s.ticketFixture("tkt_2", "2024002"),
			s.ticketFixture("tkt_1", "2024001"),
		}}, nil)

	embed, err := s.cmd.execute(s.ctx, SubcommandFind, opts(intOpt("red", 7)))
	s.Require().NoError(err)
	s.Equal("Matching tickets", embed.Title)
	s.Equal("**2024002** `01 02 03 04 05 07 | 12` tkt_2\n**2024001** `01 02 03 04 05 07 | 12` tkt_1", embed.Description)
}

func (s *DballCommandTestSuite) TestFindWithoutNumbers() {
	s.mockTickets.EXPECT().
		FindTickets(s.ctx, &ticket.FindTicketsInput{}).
		Return(nil, ticket.ErrMissingNumber)

	_, err := s.cmd.execute(s.ctx, SubcommandFind, opts())
	s.Require().ErrorIs(err, ticket.ErrMissingNumber)
	s.Equal("Give a red number, a blue number, or both.", errorMessage(err))
}

func (s *DballCommandTestSuite) TestLatestTruncatesLongLists() {
	tickets := make([]*models.Ticket, 25)
	for i := range tickets {
		tickets[i] = s.ticketFixture(fmt.Sprintf("tkt_%d", i), "2024001")
	}
	s.mockTickets.EXPECT().
		ListLatestTickets(s.ctx, &ticket.ListLatestTicketsInput{Limit: 25}).
		Return(&ticket.ListLatestTicketsOutput{Tickets: tickets}, nil)

	embed, err := s.cmd.execute(s.ctx, SubcommandLatest, opts(intOpt("limit", 25)))
	s.Require().NoError(err)
	s.Contains(embed.Description, "tkt_19")
	s.NotContains(embed.Description, "tkt_20")
	s.True(strings.HasSuffix(embed.Description, "...and 5 more"))
}

func (s *DballCommandTestSuite) TestLatestEmpty() {
	s.mockTickets.EXPECT().
		ListLatestTickets(s.ctx, &ticket.ListLatestTicketsInput{}).
		Return(&ticket.ListLatestTicketsOutput{}, nil)

	embed, err := s.cmd.execute(s.ctx, SubcommandLatest, opts())
	s.Require().NoError(err)
	s.Equal("No tickets", embed.Description)
}

func (s *DballCommandTestSuite) TestStats() {
	s.mockTickets.EXPECT().
		CountTickets(s.ctx, &ticket.CountTicketsInput{Period: "2024001"}).
		Return(&ticket.CountTicketsOutput{Count: 8}, nil)
	s.mockDraws.EXPECT().
		CountDraws(s.ctx, &draw.CountDrawsInput{Period: "2024001"}).
		Return(&draw.CountDrawsOutput{Count: 2}, nil)

	embed, err := s.cmd.execute(s.ctx, SubcommandStats, opts(stringOpt("period", "2024001")))
	s.Require().NoError(err)
	s.Contains(embed.Description, "2024001")
	s.Equal("8", embed.Fields[0].Value)
	s.Equal("2", embed.Fields[1].Value)
}

func (s *DballCommandTestSuite) TestStatsAllPeriods() {
	s.mockTickets.EXPECT().
		CountTickets(s.ctx, &ticket.CountTicketsInput{}).
		Return(&ticket.CountTicketsOutput{Count: 30}, nil)
	s.mockDraws.EXPECT().
		CountDraws(s.ctx, &draw.CountDrawsInput{}).
		Return(&draw.CountDrawsOutput{Count: 5}, nil)

	embed, err := s.cmd.execute(s.ctx, SubcommandStats, opts())
	s.Require().NoError(err)
	s.Equal("All periods", embed.Description)
}

func (s *DballCommandTestSuite) TestUnknownSubcommand() {
	_, err := s.cmd.execute(s.ctx, "roll", opts())
	s.Error(err)
}

func TestDballCommandSuite(t *testing.T) {
	suite.Run(t, new(DballCommandTestSuite))
}

func TestParseReds(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    []int
		wantErr bool
	}{
		{name: "spaces", raw: "1 2 3 4 5 6", want: []int{1, 2, 3, 4, 5, 6}},
		{name: "commas", raw: "6,5,4,3,2,1", want: []int{6, 5, 4, 3, 2, 1}},
		{name: "mixed", raw: " 1, 2 ,3  4,5\t6 ", want: []int{1, 2, 3, 4, 5, 6}},
		{name: "short list passes through", raw: "1 2", want: []int{1, 2}},
		{name: "empty", raw: "", want: []int{}},
		{name: "not a number", raw: "1 2 x", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseReds(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestErrorMessageValidation(t *testing.T) {
	err := &models.ValidationError{Kind: models.ValidationOutOfRange, Field: models.FieldBlue, Value: 17}
	assert.Equal(t, "Invalid input: blue ball 17 is out of range (1-16)", errorMessage(err))
}

func TestNewBotValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	tickets := mockTicket.NewMockService(ctrl)
	draws := mockDraw.NewMockService(ctrl)
	reconciler := mockReconcile.NewMockService(ctrl)

	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = New(&Config{TicketService: tickets, DrawService: draws, ReconcileService: reconciler})
	assert.ErrorIs(t, err, ErrEmptyToken)

	_, err = New(&Config{Token: "t", DrawService: draws, ReconcileService: reconciler})
	assert.ErrorIs(t, err, ErrNilTicketService)

	_, err = New(&Config{Token: "t", TicketService: tickets, ReconcileService: reconciler})
	assert.ErrorIs(t, err, ErrNilDrawService)

	_, err = New(&Config{Token: "t", TicketService: tickets, DrawService: draws})
	assert.ErrorIs(t, err, ErrNilReconcileService)

	bot, err := New(&Config{Token: "t", TicketService: tickets, DrawService: draws, ReconcileService: reconciler})
	require.NoError(t, err)
	assert.Equal(t, "dball", bot.dball.GetName())
}
