package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"mtgBot/internal/domain"
	"mtgBot/internal/interface/outs"
	"mtgBot/internal/usecase/status"
)

// ChatAdapter lo implementan los adapters de Discord, Telegram, Twitch, Kick y la consola web.
type ChatAdapter interface {
	outs.Sender
	domain.ConnectionReporter
	Platform() domain.Platform
	SetHandler(h domain.MessageHandler)
	Start(ctx context.Context) error
}

type ManagerConfig struct {
	Context  context.Context
	Resolver *status.Resolver
	MultiOut *outs.MultiSender
	Logger   *zap.Logger
}

type PlatformManager struct {
	ctx      context.Context
	resolver *status.Resolver
	multiOut *outs.MultiSender
	logger   *zap.Logger

	handlerMu sync.RWMutex
	handler   domain.MessageHandler

	mu       sync.Mutex
	adapters map[domain.Platform]*adapterRuntime
	wg       sync.WaitGroup
}

type adapterRuntime struct {
	adapter ChatAdapter
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewPlatformManager(cfg ManagerConfig) *PlatformManager {
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlatformManager{
		ctx:      ctx,
		resolver: cfg.Resolver,
		multiOut: cfg.MultiOut,
		logger:   logger.Named("platforms"),
		adapters: make(map[domain.Platform]*adapterRuntime),
	}
}

func (m *PlatformManager) SetHandler(handler domain.MessageHandler) {
	m.handlerMu.Lock()
	m.handler = handler
	m.handlerMu.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rt := range m.adapters {
		rt.adapter.SetHandler(handler)
	}
}

// Enable registra el adapter como sender de su plataforma y lo arranca en su
// propia goroutine. Si Start falla el adapter queda registrado pero desconectado.
func (m *PlatformManager) Enable(adapter ChatAdapter) error {
	if adapter == nil {
		return errors.New("platforms: nil adapter")
	}
	platform := adapter.Platform()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.adapters[platform]; ok {
		return fmt.Errorf("platforms: %s already enabled", platform)
	}

	if handler := m.getHandler(); handler != nil {
		adapter.SetHandler(handler)
	}
	m.multiOut.Register(platform, adapter)
	m.resolver.Set(platform, adapter)

	ctx, cancel := context.WithCancel(m.ctx)
	rt := &adapterRuntime{adapter: adapter, cancel: cancel, done: make(chan struct{})}
	m.adapters[platform] = rt

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer close(rt.done)

		logger := m.logger.With(zap.String("platform", string(platform)))
		logger.Info("starting adapter")
		err := adapter.Start(ctx)
		switch {
		case err == nil, errors.Is(err, context.Canceled):
			logger.Info("adapter stopped")
		default:
			logger.Error("adapter finished with error", zap.Error(err))
		}
	}()

	return nil
}

// Disable detiene el adapter y lo quita del MultiSender y del resolver de estado.
func (m *PlatformManager) Disable(platform domain.Platform) {
	m.mu.Lock()
	rt, ok := m.adapters[platform]
	if ok {
		delete(m.adapters, platform)
		m.multiOut.Unregister(platform)
		m.resolver.Set(platform, nil)
	}
	m.mu.Unlock()

	if !ok {
		return
	}
	rt.cancel()
	<-rt.done
	m.logger.Info("adapter disabled", zap.String("platform", string(platform)))
}

func (m *PlatformManager) Platforms() []domain.Platform {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Platform, 0, len(m.adapters))
	for platform := range m.adapters {
		out = append(out, platform)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Shutdown cancela todos los adapters y espera a que terminen.
func (m *PlatformManager) Shutdown() {
	for _, platform := range m.Platforms() {
		m.Disable(platform)
	}
	m.wg.Wait()
}

func (m *PlatformManager) getHandler() domain.MessageHandler {
	m.handlerMu.RLock()
	defer m.handlerMu.RUnlock()
	return m.handler
}
