package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtgBot/internal/domain"
	"mtgBot/internal/interface/outs"
	"mtgBot/internal/usecase/status"
)

type fakeAdapter struct {
	platform domain.Platform
	startErr error

	mu      sync.Mutex
	handler domain.MessageHandler
	sent    []string

	started   chan struct{}
	connected atomic.Bool
}

func newFakeAdapter(platform domain.Platform) *fakeAdapter {
	return &fakeAdapter{platform: platform, started: make(chan struct{})}
}

func (f *fakeAdapter) Platform() domain.Platform { return f.platform }
func (f *fakeAdapter) Connected() bool           { return f.connected.Load() }

func (f *fakeAdapter) SetHandler(h domain.MessageHandler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handler = h
}

func (f *fakeAdapter) Start(ctx context.Context) error {
	close(f.started)
	if f.startErr != nil {
		return f.startErr
	}
	f.connected.Store(true)
	<-ctx.Done()
	f.connected.Store(false)
	return ctx.Err()
}

func (f *fakeAdapter) SendMessage(_ context.Context, _ domain.Platform, _ string, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeAdapter) receive(ctx context.Context, msg domain.Message) error {
	f.mu.Lock()
	h := f.handler
	f.mu.Unlock()
	return h(ctx, msg)
}

func newManager() (*PlatformManager, *outs.MultiSender, *status.Resolver) {
	multi := outs.NewMultiSender(nil)
	resolver := status.NewResolver()
	return NewPlatformManager(ManagerConfig{MultiOut: multi, Resolver: resolver}), multi, resolver
}

func waitStarted(t *testing.T, f *fakeAdapter) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(time.Second):
		t.Fatalf("%s adapter not started", f.platform)
	}
}

func TestPlatformManager_EnableAndRoute(t *testing.T) {
	m, multi, resolver := newManager()
	discord := newFakeAdapter(domain.PlatformDiscord)

	var got []domain.Message
	var mu sync.Mutex
	m.SetHandler(func(_ context.Context, msg domain.Message) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, msg)
		return nil
	})

	require.NoError(t, m.Enable(discord))
	waitStarted(t, discord)

	require.NoError(t, discord.receive(context.Background(), domain.Message{Platform: domain.PlatformDiscord, Text: "!ping"}))
	assert.Len(t, got, 1)

	require.NoError(t, multi.SendMessage(context.Background(), domain.PlatformDiscord, "c1", "pong from discord"))
	assert.Equal(t, []string{"pong from discord"}, discord.sent)

	require.Eventually(t, func() bool {
		snap := resolver.Snapshot()
		return len(snap) == 1 && snap[0].Connected
	}, time.Second, 10*time.Millisecond)

	m.Shutdown()
	assert.Empty(t, m.Platforms())
	assert.Empty(t, resolver.Snapshot())
	assert.ErrorIs(t, multi.SendMessage(context.Background(), domain.PlatformDiscord, "c1", "x"), outs.ErrNoSender)
}

func TestPlatformManager_DuplicatePlatform(t *testing.T) {
	m, _, _ := newManager()
	defer m.Shutdown()

	require.NoError(t, m.Enable(newFakeAdapter(domain.PlatformKick)))
	assert.Error(t, m.Enable(newFakeAdapter(domain.PlatformKick)))
	assert.Error(t, m.Enable(nil))
}

func TestPlatformManager_FailingAdapterDoesNotBlockShutdown(t *testing.T) {
	m, _, resolver := newManager()
	broken := newFakeAdapter(domain.PlatformTelegram)
	broken.startErr = errors.New("unauthorized")
	healthy := newFakeAdapter(domain.PlatformTwitch)

	require.NoError(t, m.Enable(broken))
	require.NoError(t, m.Enable(healthy))
	waitStarted(t, broken)
	waitStarted(t, healthy)

	assert.Equal(t, []domain.Platform{domain.PlatformTelegram, domain.PlatformTwitch}, m.Platforms())

	require.Eventually(t, func() bool {
		snap := resolver.Snapshot()
		return len(snap) == 2 && !snap[0].Connected && snap[1].Connected
	}, time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		m.Shutdown()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown blocked")
	}
}

func TestPlatformManager_SetHandlerAfterEnable(t *testing.T) {
	m, _, _ := newManager()
	defer m.Shutdown()

	web := newFakeAdapter(domain.PlatformWeb)
	require.NoError(t, m.Enable(web))

	called := false
	m.SetHandler(func(context.Context, domain.Message) error {
		called = true
		return nil
	})
	require.NoError(t, web.receive(context.Background(), domain.Message{}))
	assert.True(t, called)
}
