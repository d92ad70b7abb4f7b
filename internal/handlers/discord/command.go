package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Responder sends interaction responses; *discordgo.Session satisfies it
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a slash command interaction
	Handle(r Responder, i *discordgo.InteractionCreate) error
}

// ComponentHandler handles button clicks and select menus
type ComponentHandler interface {
	// ComponentIDs returns the custom IDs the handler owns
	ComponentIDs() []string

	// HandleComponent processes a message component interaction
	HandleComponent(r Responder, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

const (
	colorGreen = 0x2ecc71
	colorRed   = 0xe74c3c
	colorGold  = 0xf1c40f
	colorBlue  = 0x3498db
	colorGray  = 0x95a5a6
)

// reply is what a command wants shown to the user
type reply struct {
	Content    string
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent

	// Ephemeral replies are only visible to the coach who asked
	Ephemeral bool
}

// respond sends rep as a new message, or edits the clicked message for component interactions
func respond(r Responder, i *discordgo.InteractionCreate, rep *reply) error {
	data := &discordgo.InteractionResponseData{
		Content:    rep.Content,
		Embeds:     rep.Embeds,
		Components: rep.Components,
	}

	respType := discordgo.InteractionResponseChannelMessageWithSource
	if i.Type == discordgo.InteractionMessageComponent && !rep.Ephemeral {
		respType = discordgo.InteractionResponseUpdateMessage
	} else if rep.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: respType,
		Data: data,
	})
}

// respondWithError sends an ephemeral error embed
func respondWithError(r Responder, i *discordgo.InteractionCreate, message string) error {
	return respond(r, i, &reply{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "Flag on the play",
			Description: message,
			Color:       colorRed,
		}},
		Ephemeral: true,
	})
}

// interactionUser returns the caller's ID and display name in guilds and DMs
func interactionUser(i *discordgo.InteractionCreate) (string, string) {
	if i.Member != nil && i.Member.User != nil {
		name := i.Member.User.Username
		if i.Member.Nick != "" {
			name = i.Member.Nick
		}
		return i.Member.User.ID, name
	}
	if i.User != nil {
		return i.User.ID, i.User.Username
	}
	return "", ""
}
