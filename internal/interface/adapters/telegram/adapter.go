// Package telegramadapter adapter for telegram
package telegramadapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"mtgBot/internal/domain"
	"mtgBot/internal/interface/adapters/chunk"
)

const (
	maxMessageLength = 4096
	pollTimeout      = 60
)

type Config struct {
	Token string
	// Prefix es el prefijo del router; "/rec@bot Ezuri" se reescribe como "!rec Ezuri".
	Prefix string
}

// BotAPI son los métodos de tgbotapi.BotAPI que usa el adapter.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Adapter struct {
	cfg    Config
	logger *zap.Logger

	mu      sync.RWMutex
	handler domain.MessageHandler
	bot     BotAPI
}

func NewAdapter(cfg Config, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{cfg: cfg, logger: logger.Named("telegram")}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformTelegram
}

func (a *Adapter) SetHandler(h domain.MessageHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handler = h
}

func (a *Adapter) Start(ctx context.Context) error {
	if a.cfg.Token == "" {
		return errors.New("telegram: empty bot token")
	}

	bot, err := tgbotapi.NewBotAPI(a.cfg.Token)
	if err != nil {
		return fmt.Errorf("telegram: new bot api: %w", err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	updates := bot.GetUpdatesChan(u)

	a.mu.Lock()
	a.bot = bot
	a.mu.Unlock()

	a.logger.Info("connected", zap.String("username", bot.Self.UserName))

	defer func() {
		bot.StopReceivingUpdates()
		a.mu.Lock()
		a.bot = nil
		a.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return errors.New("telegram: updates channel closed")
			}
			a.dispatch(ctx, update)
		}
	}
}

func (a *Adapter) dispatch(ctx context.Context, update tgbotapi.Update) {
	a.mu.RLock()
	handler := a.handler
	a.mu.RUnlock()
	if handler == nil {
		return
	}

	msg, ok := mapMessage(update.Message, a.cfg.Prefix)
	if !ok {
		return
	}
	go func() {
		if err := handler(ctx, msg); err != nil {
			a.logger.Warn("handler error", zap.String("chat_id", msg.ChannelID), zap.Error(err))
		}
	}()
}

func (a *Adapter) Connected() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.bot != nil
}

func (a *Adapter) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	if platform != domain.PlatformTelegram {
		return fmt.Errorf("telegram adapter does not support platform %s", platform)
	}

	chatID, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		return fmt.Errorf("telegram: invalid chat id %q: %w", channelID, err)
	}

	a.mu.RLock()
	bot := a.bot
	a.mu.RUnlock()
	if bot == nil {
		return errors.New("telegram: bot not initialized")
	}

	for _, part := range chunk.Split(text, maxMessageLength) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := bot.Send(tgbotapi.NewMessage(chatID, part)); err != nil {
			return fmt.Errorf("telegram: send message: %w", err)
		}
	}
	return nil
}

func mapMessage(m *tgbotapi.Message, prefix string) (domain.Message, bool) {
	if m == nil || m.Chat == nil || m.Text == "" {
		return domain.Message{}, false
	}
	if m.From != nil && m.From.IsBot {
		return domain.Message{}, false
	}

	msg := domain.Message{
		Platform:  domain.PlatformTelegram,
		ChannelID: strconv.FormatInt(m.Chat.ID, 10),
		Text:      normalizeCommand(m, prefix),
		IsPrivate: m.Chat.IsPrivate(),
	}
	if m.From != nil {
		msg.UserID = strconv.FormatInt(m.From.ID, 10)
		msg.Username = m.From.UserName
	}
	return msg, true
}

// normalizeCommand convierte los comandos nativos de Telegram al prefijo del router.
func normalizeCommand(m *tgbotapi.Message, prefix string) string {
	if prefix == "" || !m.IsCommand() {
		return m.Text
	}
	text := prefix + m.Command()
	if args := strings.TrimSpace(m.CommandArguments()); args != "" {
		text += " " + args
	}
	return text
}
