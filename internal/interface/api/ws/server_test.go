package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtgBot/internal/app/events"
	"mtgBot/internal/domain"
	"mtgBot/internal/usecase/commands"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticStatus []domain.PlatformStatus

func (s staticStatus) Snapshot() []domain.PlatformStatus { return s }

func newTestServer(t *testing.T, bus Subscriber) (*Server, *httptest.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	s := NewServer(Config{
		Commands: commands.NewService("!"),
		Status:   staticStatus{{Platform: domain.PlatformDiscord, Connected: true}},
		Events:   bus,
	}, nil)
	ts := httptest.NewServer(s.SetupRouter(ctx))
	t.Cleanup(ts.Close)
	s.startRelay(ctx)
	return s, ts
}

func dial(t *testing.T, s *Server, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return s.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got map[string]any
	require.NoError(t, conn.ReadJSON(&got))
	return got
}

func TestServer_WebSocketRoundTrip(t *testing.T) {
	s, ts := newTestServer(t, nil)

	received := make(chan domain.Message, 1)
	s.SetHandler(func(ctx context.Context, msg domain.Message) error {
		received <- msg
		return s.SendMessage(ctx, msg.Platform, msg.ChannelID, "pong from web")
	})

	conn := dial(t, s, ts)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"text":" !ping ","username":"judge"}`)))

	select {
	case msg := <-received:
		assert.Equal(t, domain.Message{
			Platform:  domain.PlatformWeb,
			ChannelID: "console",
			UserID:    "web",
			Username:  "judge",
			Text:      "!ping",
		}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("handler not called")
	}

	got := readEnvelope(t, conn)
	assert.Equal(t, "reply", got["type"])
	assert.Equal(t, map[string]any{"channel_id": "console", "text": "pong from web"}, got["data"])
}

func TestServer_PlainTextMessage(t *testing.T) {
	s, ts := newTestServer(t, nil)

	received := make(chan domain.Message, 1)
	s.SetHandler(func(_ context.Context, msg domain.Message) error {
		received <- msg
		return nil
	})

	conn := dial(t, s, ts)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("!define flying")))

	select {
	case msg := <-received:
		assert.Equal(t, "!define flying", msg.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("handler not called")
	}
}

func TestServer_RelaysBusEvents(t *testing.T) {
	bus := events.NewBus(nil)
	s, ts := newTestServer(t, bus)
	conn := dial(t, s, ts)

	dto := events.CommandResultDTO{RequestID: "req-1", Command: "rec"}
	bus.Publish(events.TopicCommandResult, dto)

	got := readEnvelope(t, conn)
	assert.Equal(t, events.TopicCommandResult, got["type"])
	data := got["data"].(map[string]any)
	assert.Equal(t, "req-1", data["request_id"])
}

func TestServer_API(t *testing.T) {
	_, ts := newTestServer(t, nil)

	t.Run("commands", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/commands")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

		var body struct {
			Commands []commands.CommandDTO `json:"commands"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.NotEmpty(t, body.Commands)
		assert.Equal(t, "define", body.Commands[0].Name)
		assert.Equal(t, "!define <keyword>", body.Commands[0].Usage)
	})

	t.Run("status", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/status")
		require.NoError(t, err)
		defer resp.Body.Close()

		var body statusResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, []domain.PlatformStatus{{Platform: domain.PlatformDiscord, Connected: true}}, body.Platforms)
		assert.Zero(t, body.ConsoleClients)
	})

	t.Run("healthz", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("post message without text", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/messages", "application/json", strings.NewReader(`{"text":"  "}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("preflight", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/commands", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestServer_PostMessage(t *testing.T) {
	s, ts := newTestServer(t, nil)

	received := make(chan domain.Message, 1)
	s.SetHandler(func(_ context.Context, msg domain.Message) error {
		received <- msg
		return nil
	})

	resp, err := http.Post(ts.URL+"/api/messages", "application/json", strings.NewReader(`{"text":"!rules sol ring","channel_id":"table-1"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	select {
	case msg := <-received:
		assert.Equal(t, "table-1", msg.ChannelID)
		assert.Equal(t, "!rules sol ring", msg.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("handler not called")
	}
}

func TestServer_SendMessageRejectsOtherPlatforms(t *testing.T) {
	s := NewServer(Config{}, nil)
	assert.Error(t, s.SendMessage(context.Background(), domain.PlatformDiscord, "c", "x"))
	assert.NoError(t, s.SendMessage(context.Background(), domain.PlatformWeb, "console", "nobody listening"))
	assert.False(t, s.Connected())
}
