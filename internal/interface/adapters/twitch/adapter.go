// Package twitchadapter adapter for twitch
package twitchadapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/adeithe/go-twitch/irc"
	"go.uber.org/zap"

	"mtgBot/internal/domain"
	"mtgBot/internal/interface/adapters/chunk"
)

// maxMessageLength es el límite de caracteres de un PRIVMSG en Twitch.
const maxMessageLength = 500

type Config struct {
	Username   string
	OAuthToken string
	Channels   []string
}

type Adapter struct {
	cfg    Config
	logger *zap.Logger

	mu      sync.RWMutex
	handler domain.MessageHandler
	conn    *irc.Conn
}

func NewAdapter(cfg Config, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{cfg: cfg, logger: logger.Named("twitch")}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformTwitch
}

func (a *Adapter) SetHandler(h domain.MessageHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handler = h
}

func (a *Adapter) Start(ctx context.Context) error {
	if len(a.cfg.Channels) == 0 {
		return errors.New("twitch: no channels configured")
	}
	if a.cfg.Username == "" || a.cfg.OAuthToken == "" {
		return errors.New("twitch: empty username or oauth token")
	}

	conn := &irc.Conn{}

	if err := conn.SetLogin(a.cfg.Username, a.cfg.OAuthToken); err != nil {
		return fmt.Errorf("twitch: SetLogin: %w", err)
	}

	conn.OnMessage(func(cm irc.ChatMessage) {
		a.mu.RLock()
		handler := a.handler
		a.mu.RUnlock()
		if handler == nil {
			return
		}

		// go-twitch entrega los mensajes en su goroutine de lectura; una
		// consulta lenta a EDHREC no debe frenar el resto del chat.
		msg := mapChatMessageToDomain(cm)
		go func() {
			if err := handler(ctx, msg); err != nil {
				a.logger.Warn("handler error", zap.String("channel", msg.ChannelID), zap.Error(err))
			}
		}()
	})

	if err := conn.Connect(); err != nil {
		return fmt.Errorf("twitch: Connect: %w", err)
	}

	if err := conn.Join(a.cfg.Channels...); err != nil {
		conn.Close()
		return fmt.Errorf("twitch: Join: %w", err)
	}

	a.mu.Lock()
	a.conn = conn
	a.mu.Unlock()

	a.logger.Info("connected", zap.String("username", a.cfg.Username), zap.Strings("channels", a.cfg.Channels))

	<-ctx.Done()

	a.mu.Lock()
	if a.conn != nil {
		a.conn.Close()
		a.conn = nil
	}
	a.mu.Unlock()

	return ctx.Err()
}

func (a *Adapter) Connected() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.conn != nil && a.conn.IsConnected()
}

// SendMessage manda cada línea como un mensaje aparte; IRC no admite saltos de línea.
func (a *Adapter) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	if platform != domain.PlatformTwitch {
		return fmt.Errorf("twitch adapter does not support platform %s", platform)
	}

	a.mu.RLock()
	conn := a.conn
	a.mu.RUnlock()

	if conn == nil || !conn.IsConnected() {
		return errors.New("twitch: connection not initialized or closed")
	}

	for _, line := range chunk.Lines(text, maxMessageLength) {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.logger.Debug("say", zap.String("channel", channelID), zap.String("text", line))
		if err := conn.Say(channelID, line); err != nil {
			return fmt.Errorf("twitch: Say: %w", err)
		}
	}
	return nil
}

func mapChatMessageToDomain(cm irc.ChatMessage) domain.Message {
	sender := cm.Sender

	return domain.Message{
		Platform:  domain.PlatformTwitch,
		ChannelID: cm.Channel,
		UserID:    strconv.FormatInt(sender.ID, 10),
		Username:  sender.DisplayName,
		Text:      cm.Text,
		IsPrivate: false,
	}
}
