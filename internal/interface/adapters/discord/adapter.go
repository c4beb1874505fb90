// Package discordadapter adapter for discord
package discordadapter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"mtgBot/internal/domain"
	"mtgBot/internal/interface/adapters/chunk"
)

// maxMessageLength es el límite de contenido de un mensaje de Discord.
const maxMessageLength = 2000

type Config struct {
	Token string
}

type Adapter struct {
	cfg    Config
	logger *zap.Logger

	mu        sync.RWMutex
	handler   domain.MessageHandler
	session   *discordgo.Session
	connected atomic.Bool
}

func NewAdapter(cfg Config, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{cfg: cfg, logger: logger.Named("discord")}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformDiscord
}

func (a *Adapter) SetHandler(h domain.MessageHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handler = h
}

func (a *Adapter) Start(ctx context.Context) error {
	if a.cfg.Token == "" {
		return errors.New("discord: empty bot token")
	}

	session, err := discordgo.New("Bot " + a.cfg.Token)
	if err != nil {
		return fmt.Errorf("discord: new session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentGuildMessages |
		discordgo.IntentDirectMessages |
		discordgo.IntentMessageContent

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		a.connected.Store(true)
		username := ""
		if r.User != nil {
			username = r.User.Username
		}
		a.logger.Info("ready", zap.String("user", username), zap.Int("guilds", len(r.Guilds)))
	})
	session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Resumed) {
		a.connected.Store(true)
	})
	session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
		a.connected.Store(false)
		a.logger.Warn("gateway disconnected")
	})
	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		a.mu.RLock()
		handler := a.handler
		a.mu.RUnlock()
		if handler == nil {
			return
		}

		selfID := ""
		if s.State != nil && s.State.User != nil {
			selfID = s.State.User.ID
		}
		msg, ok := mapMessageCreate(m, selfID)
		if !ok {
			return
		}
		if err := handler(ctx, msg); err != nil {
			a.logger.Warn("handler error", zap.String("channel", msg.ChannelID), zap.Error(err))
		}
	})

	if err := session.Open(); err != nil {
		return fmt.Errorf("discord: open gateway: %w", err)
	}

	a.mu.Lock()
	a.session = session
	a.mu.Unlock()

	a.logger.Info("connected")

	<-ctx.Done()

	a.mu.Lock()
	a.session = nil
	a.mu.Unlock()
	a.connected.Store(false)

	if err := session.Close(); err != nil {
		a.logger.Warn("close session", zap.Error(err))
	}
	return ctx.Err()
}

func (a *Adapter) Connected() bool {
	return a.connected.Load()
}

// SendMessage parte las respuestas que superan el límite de Discord por líneas.
func (a *Adapter) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	if platform != domain.PlatformDiscord {
		return fmt.Errorf("discord adapter does not support platform %s", platform)
	}

	a.mu.RLock()
	session := a.session
	a.mu.RUnlock()
	if session == nil {
		return errors.New("discord: session not initialized")
	}

	for _, part := range chunk.Split(text, maxMessageLength) {
		if _, err := session.ChannelMessageSend(channelID, part, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("discord: send message: %w", err)
		}
	}
	return nil
}

// mapMessageCreate descarta mensajes propios y de otros bots.
func mapMessageCreate(m *discordgo.MessageCreate, selfID string) (domain.Message, bool) {
	if m == nil || m.Message == nil || m.Author == nil {
		return domain.Message{}, false
	}
	if m.Author.Bot || (selfID != "" && m.Author.ID == selfID) {
		return domain.Message{}, false
	}

	return domain.Message{
		Platform:  domain.PlatformDiscord,
		ChannelID: m.ChannelID,
		UserID:    m.Author.ID,
		Username:  m.Author.Username,
		Text:      m.Content,
		IsPrivate: m.GuildID == "",
	}, true
}
