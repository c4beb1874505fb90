// Package kickadapter adapter for kick
package kickadapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	kicksdk "github.com/glichtv/kick-sdk"
	kickchatwrapper "github.com/johanvandegriff/kick-chat-wrapper"
	"go.uber.org/zap"

	"mtgBot/internal/domain"
	"mtgBot/internal/interface/adapters/chunk"
)

// maxMessageLength es el límite de la API de chat de Kick.
const maxMessageLength = 500

type Config struct {
	// Token del bot (OAuth de usuario con scope chat:write)
	AccessToken string

	// ID del usuario broadcaster del canal donde escucha el bot
	BroadcasterUserID int

	// ID del chatroom (no es el mismo que el userID)
	ChatroomID int

	// Usuario de Kick con el que publica el bot. El chatroom devuelve
	// también los mensajes propios y se descartan por este nombre.
	BotUsername string
}

type Adapter struct {
	cfg    Config
	logger *zap.Logger

	mu      sync.RWMutex
	handler domain.MessageHandler
	sdk     *kicksdk.Client
	ws      *kickchatwrapper.Client
}

func NewAdapter(cfg Config, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{cfg: cfg, logger: logger.Named("kick")}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformKick
}

func (a *Adapter) SetHandler(h domain.MessageHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handler = h
}

func (a *Adapter) Start(ctx context.Context) error {
	if a.cfg.AccessToken == "" {
		return errors.New("kick: empty access token")
	}
	if a.cfg.ChatroomID == 0 {
		return errors.New("kick: ChatroomID not configured")
	}
	if a.cfg.BroadcasterUserID == 0 {
		return errors.New("kick: BroadcasterUserID not configured")
	}
	if a.cfg.BotUsername == "" {
		return errors.New("kick: BotUsername not configured")
	}

	// Cliente REST para enviar mensajes
	sdkClient := kicksdk.NewClient(
		kicksdk.WithAccessTokens(kicksdk.AccessTokens{
			UserAccessToken: a.cfg.AccessToken,
		}),
	)

	// Cliente WebSocket para escuchar el chat
	wsClient, err := kickchatwrapper.NewClient()
	if err != nil {
		return fmt.Errorf("kick: create ws client: %w", err)
	}

	if err := wsClient.JoinChannelByID(a.cfg.ChatroomID); err != nil {
		return fmt.Errorf("kick: JoinChannelByID: %w", err)
	}

	msgChan := wsClient.ListenForMessages()

	a.mu.Lock()
	a.sdk = sdkClient
	a.ws = wsClient
	a.mu.Unlock()

	a.logger.Info("connected",
		zap.Int("chatroom_id", a.cfg.ChatroomID),
		zap.Int("broadcaster_user_id", a.cfg.BroadcasterUserID),
	)

	go a.readLoop(ctx, msgChan)

	<-ctx.Done()

	a.mu.Lock()
	if a.ws != nil {
		a.ws.Close()
	}
	a.ws = nil
	a.sdk = nil
	a.mu.Unlock()

	return ctx.Err()
}

func (a *Adapter) readLoop(ctx context.Context, msgChan <-chan kickchatwrapper.ChatMessage) {
	for {
		select {
		case m, ok := <-msgChan:
			if !ok {
				a.logger.Warn("message channel closed")
				return
			}

			a.mu.RLock()
			handler := a.handler
			a.mu.RUnlock()
			if handler == nil {
				continue
			}

			msg, ok := mapChatMessageToDomain(m, a.cfg.BotUsername)
			if !ok {
				continue
			}
			go func() {
				if err := handler(ctx, msg); err != nil {
					a.logger.Warn("handler error", zap.Error(err))
				}
			}()

		case <-ctx.Done():
			return
		}
	}
}

func (a *Adapter) Connected() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ws != nil && a.sdk != nil
}

func (a *Adapter) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	if platform != domain.PlatformKick {
		return fmt.Errorf("kick adapter does not support platform %s", platform)
	}

	a.mu.RLock()
	client := a.sdk
	a.mu.RUnlock()

	if client == nil {
		return errors.New("kick: SDK client not initialized")
	}

	for _, line := range chunk.Lines(text, maxMessageLength) {
		if err := a.post(ctx, client, line); err != nil {
			return err
		}
	}
	return nil
}

func (a *Adapter) post(ctx context.Context, client *kicksdk.Client, text string) error {
	resp, err := client.Chat().PostMessage(ctx, kicksdk.PostChatMessageInput{
		BroadcasterUserID: a.cfg.BroadcasterUserID,
		Content:           text,
		PosterType:        kicksdk.MessagePosterUser,
	})
	if err != nil {
		return fmt.Errorf("kick: post chat message: %w", err)
	}

	if !resp.Payload.IsSent {
		meta := resp.ResponseMetadata
		a.logger.Warn("PostMessage rejected",
			zap.Int("status", meta.StatusCode),
			zap.String("message_id", resp.Payload.MessageID),
			zap.String("kick_message", meta.KickMessage),
			zap.String("kick_error", meta.KickError),
			zap.String("description", meta.KickErrorDescription),
		)
		return fmt.Errorf("kick: message not accepted by the API (status %d)", meta.StatusCode)
	}

	a.logger.Debug("message delivered", zap.String("message_id", resp.Payload.MessageID))
	return nil
}

// mapChatMessageToDomain descarta los mensajes publicados por el propio bot.
func mapChatMessageToDomain(m kickchatwrapper.ChatMessage, botUsername string) (domain.Message, bool) {
	if botUsername != "" && strings.EqualFold(m.Sender.Username, botUsername) {
		return domain.Message{}, false
	}
	return domain.Message{
		Platform:  domain.PlatformKick,
		ChannelID: strconv.Itoa(m.ChatroomID),
		UserID:    strconv.Itoa(m.Sender.ID),
		Username:  m.Sender.Username,
		Text:      m.Content,
		IsPrivate: false,
	}, true
}
