package outs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"mtgBot/internal/domain"
)

var ErrNoSender = errors.New("no sender registered")

// Sender es la interfaz que implementan los adapters de salida (Discord, Telegram, Twitch, ...).
type Sender interface {
	// channelID es el canal al que hay que responder (ej. "#mtgstream" en Twitch,
	// el chat id en Telegram).
	SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error
}

// MultiSender enruta las respuestas al sender de la plataforma de origen.
type MultiSender struct {
	mu      sync.RWMutex
	senders map[domain.Platform]Sender
	logger  *zap.Logger
}

func NewMultiSender(logger *zap.Logger) *MultiSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MultiSender{
		senders: make(map[domain.Platform]Sender),
		logger:  logger.Named("outs"),
	}
}

func (m *MultiSender) Register(platform domain.Platform, sender Sender) {
	if m == nil || sender == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.senders[platform] = sender
}

func (m *MultiSender) Unregister(platform domain.Platform) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.senders, platform)
}

func (m *MultiSender) Platforms() []domain.Platform {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Platform, 0, len(m.senders))
	for platform := range m.senders {
		out = append(out, platform)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SendMessage busca el sender para esa plataforma y delega el envío.
func (m *MultiSender) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	if m == nil {
		return fmt.Errorf("outs: %w", ErrNoSender)
	}
	m.mu.RLock()
	sender, ok := m.senders[platform]
	m.mu.RUnlock()
	if !ok {
		m.logger.Warn("reply dropped, no sender", zap.String("platform", string(platform)))
		return fmt.Errorf("outs: %w for platform %s", ErrNoSender, platform)
	}

	if err := sender.SendMessage(ctx, platform, channelID, text); err != nil {
		m.logger.Error("send failed",
			zap.String("platform", string(platform)),
			zap.String("channel_id", channelID),
			zap.Error(err),
		)
		return fmt.Errorf("outs: send to %s: %w", platform, err)
	}
	return nil
}
