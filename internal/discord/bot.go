package discord

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GiveawayBot_Go/internal/logger"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	GuildID  string
	Registry *CommandRegistry

	connected atomic.Bool
	readyOnce sync.Once
	onReady   func(ctx context.Context)
}

// Config holds the bot configuration
type Config struct {
	Token   string
	AppID   string
	GuildID string // empty registers commands globally
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	return &Bot{
		Session:  s,
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		Registry: NewCommandRegistry(),
	}, nil
}

// OnReady registers fn to run once, on the first Ready event after Start.
// Gateway reconnects do not run it again.
func (b *Bot) OnReady(fn func(ctx context.Context)) {
	b.onReady = fn
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.disconnect)
	b.Session.AddHandler(b.resumed)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	logger.Info(LogMsgBotRunning)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	b.connected.Store(false)
	return b.Session.Close()
}

// Connected reports whether the gateway session is currently up
func (b *Bot) Connected() bool {
	return b.connected.Load()
}

// RegisterCommands syncs the registry's commands with Discord
func (b *Bot) RegisterCommands(ctx context.Context, forceUpdate bool) error {
	desired := make([]*discordgo.ApplicationCommand, 0, len(b.Registry.Commands))
	for _, cmd := range b.Registry.Commands {
		desired = append(desired, cmd)
	}
	return syncCommands(ctx, b.Session, b.AppID, b.GuildID, desired, forceUpdate)
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	b.connected.Store(true)
	username := ""
	if r.User != nil {
		username = r.User.Username
	}
	logger.Info(LogMsgBotReady, "user", username, "guilds", len(r.Guilds))

	b.readyOnce.Do(func() {
		if b.onReady != nil {
			b.onReady(context.Background())
		}
	})
}

func (b *Bot) disconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	b.connected.Store(false)
	logger.Warn(LogMsgGatewayDisconnected)
}

func (b *Bot) resumed(_ *discordgo.Session, _ *discordgo.Resumed) {
	b.connected.Store(true)
	logger.Info(LogMsgGatewayResumed)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry == nil {
		return
	}
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	b.Registry.Handle(ctx, s, i)
}
