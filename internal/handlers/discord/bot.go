package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gridiron/internal/models"
	"github.com/KirkDiggler/gridiron/internal/services/coach"
	"github.com/KirkDiggler/gridiron/internal/services/commentary"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	components map[string]ComponentHandler
	commandIDs map[string]string // Maps command name to command ID
	gridiron   *GridironCommand
	config     *Config
	log        *zap.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// CoachService runs every session operation
	CoachService coach.Service

	// Commentary turns error codes into sideline chatter; optional
	Commentary commentary.Service

	// Archetypes are offered as /gridiron start choices
	Archetypes []models.Archetype

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.CoachService == nil {
		return nil, errors.New("coach service cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		components: make(map[string]ComponentHandler),
		commandIDs: make(map[string]string),
		gridiron:   NewGridironCommand(cfg.CoachService, cfg.Commentary, cfg.Archetypes, log),
		config:     cfg,
		log:        log,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the gateway connection and registers the gridiron command
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.gridiron); err != nil {
		return fmt.Errorf("failed to register gridiron command: %w", err)
	}
	b.RegisterComponents(b.gridiron)

	b.log.Info("bot is running")
	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.Warn("failed to delete command",
				zap.String("command", cmdName), zap.String("command_id", cmdID), zap.Error(err))
			continue
		}
		b.log.Info("deleted command", zap.String("command", cmdName), zap.String("command_id", cmdID))
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord, for the guild when one is configured
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.log.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", b.config.GuildID))

	return nil
}

// RegisterComponents routes the handler's component custom IDs to it
func (b *Bot) RegisterComponents(h ComponentHandler) {
	for _, id := range h.ComponentIDs() {
		b.components[id] = h
	}
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.dispatch(s, i)
}

func (b *Bot) dispatch(r Responder, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(r, i); err != nil {
				b.log.Error("error handling command", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		h, ok := b.components[customID]
		if !ok {
			if err := respondWithError(r, i, fmt.Sprintf("Unknown button: %s", customID)); err != nil {
				b.log.Error("error responding to component", zap.String("custom_id", customID), zap.Error(err))
			}
			return
		}
		if err := h.HandleComponent(r, i); err != nil {
			b.log.Error("error handling component", zap.String("custom_id", customID), zap.Error(err))
		}
	}
}
