package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dball/internal/services/draw"
	"github.com/KirkDiggler/dball/internal/services/reconcile"
	"github.com/KirkDiggler/dball/internal/services/ticket"
)

// BotError is a custom error type for Discord bot errors
type BotError string

// Error implements the error interface
func (e BotError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig           BotError = "config cannot be nil"
	ErrEmptyToken          BotError = "token cannot be empty"
	ErrNilTicketService    BotError = "ticket service cannot be nil"
	ErrNilDrawService      BotError = "draw service cannot be nil"
	ErrNilReconcileService BotError = "reconcile service cannot be nil"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	dball      *DballCommand
	config     *Config
	log        logrus.FieldLogger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	TicketService    ticket.Service
	DrawService      draw.Service
	ReconcileService reconcile.Service

	Logger logrus.FieldLogger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Token == "" {
		return nil, ErrEmptyToken
	}

	if cfg.TicketService == nil {
		return nil, ErrNilTicketService
	}

	if cfg.DrawService == nil {
		return nil, ErrNilDrawService
	}

	if cfg.ReconcileService == nil {
		return nil, ErrNilReconcileService
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		dball:      NewDballCommand(cfg.TicketService, cfg.DrawService, cfg.ReconcileService, log),
		config:     cfg,
		log:        log.WithField("component", "discord"),
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.dball); err != nil {
		return fmt.Errorf("failed to register dball command: %w", err)
	}

	b.log.Info("Discord bot is running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		entry := b.log.WithFields(logrus.Fields{"command": cmdName, "command_id": cmdID})
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			entry.WithError(err).Warn("Failed to delete command")
			continue
		}
		entry.Debug("Deleted command")
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord, for the configured guild or globally
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	entry := b.log.WithField("command", cmd.GetName())
	if b.config.GuildID != "" {
		entry = entry.WithField("guild_id", b.config.GuildID)
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	entry.WithField("command_id", createdCmd.ID).Info("Registered command")

	return nil
}

// appID falls back to the session user ID when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction dispatches slash commands to their handlers
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	if h, ok := b.commands[name]; ok {
		if err := h.Handle(s, i); err != nil {
			b.log.WithError(err).WithField("command", name).Error("Error handling command")
		}
	}
}
