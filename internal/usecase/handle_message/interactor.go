// Package handle_message
package handle_message

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mtgBot/internal/app/events"
	"mtgBot/internal/domain"
	"mtgBot/internal/usecase/commands"
)

const defaultCommandTimeout = 20 * time.Second

// Publisher es la parte del bus de eventos que usa el interactor.
type Publisher interface {
	Publish(topic string, payload any)
}

type Config struct {
	CommandTimeout time.Duration
	Publisher      Publisher
	Logger         *zap.Logger
}

type Interactor struct {
	router    *commands.Router
	out       domain.OutgoingMessagePort
	publisher Publisher
	timeout   time.Duration
	logger    *zap.Logger
	newID     func() string
}

func NewInteractor(out domain.OutgoingMessagePort, router *commands.Router, cfg Config) *Interactor {
	timeout := cfg.CommandTimeout
	if timeout <= 0 {
		timeout = defaultCommandTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{
		router:    router,
		out:       out,
		publisher: cfg.Publisher,
		timeout:   timeout,
		logger:    logger.Named("handle_message"),
		newID:     uuid.NewString,
	}
}

// Handle procesa un mensaje entrante. Cada comando corre con su propio
// timeout; los mensajes que no son comandos solo se publican en el bus.
func (uc *Interactor) Handle(ctx context.Context, msg domain.Message) error {
	requestID := uc.newID()
	uc.publish(events.TopicChatMessage, events.NewChatMessageDTO(requestID, msg))

	cmd, cmdCtx, ok := uc.router.Resolve(msg)
	if !ok {
		return nil
	}

	logger := uc.logger.With(
		zap.String("request_id", requestID),
		zap.String("platform", string(msg.Platform)),
		zap.String("channel_id", msg.ChannelID),
		zap.String("command", cmd.Name()),
	)
	logger.Info("command received", zap.String("user", msg.Username), zap.String("argument", cmdCtx.Arg))

	cmdCtxTimeout, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	err := uc.router.Dispatch(cmdCtxTimeout, cmd, cmdCtx, uc.out)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		logger.Info("command completed", zap.Duration("elapsed", elapsed))
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("command timed out", zap.Duration("elapsed", elapsed), zap.Error(err))
	default:
		logger.Error("command failed", zap.Duration("elapsed", elapsed), zap.Error(err))
	}

	uc.publish(events.TopicCommandResult, events.NewCommandResultDTO(requestID, msg, cmd.Name(), cmdCtx.Arg, elapsed, err))
	return err
}

func (uc *Interactor) publish(topic string, payload any) {
	if uc.publisher == nil {
		return
	}
	uc.publisher.Publish(topic, payload)
}
