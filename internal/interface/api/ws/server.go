package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"mtgBot/internal/app/events"
	"mtgBot/internal/domain"
)

const (
	defaultChannelID = "console"
	shutdownTimeout  = 5 * time.Second
	writeTimeout     = 10 * time.Second
)

// Subscriber es la parte del bus de eventos que retransmite la consola.
type Subscriber interface {
	Subscribe(topic string) (<-chan any, func())
}

type Config struct {
	Addr     string
	Commands CommandLister
	Status   StatusSnapshotter
	Events   Subscriber
}

// Server es la consola web: un endpoint WebSocket para hablar con el bot como
// si fuera un chat más, y una API HTTP de solo lectura.
type Server struct {
	addr     string
	upgrader websocket.Upgrader
	logger   *zap.Logger
	events   Subscriber
	api      *apiHandlers

	mu      sync.RWMutex
	clients map[*wsClient]struct{}
	handler domain.MessageHandler

	listening atomic.Bool
}

type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) writeRaw(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

// envelope es el formato de todo lo que la consola envía a sus clientes.
type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type replyPayload struct {
	ChannelID string `json:"channel_id"`
	Text      string `json:"text"`
}

type incomingPayload struct {
	Text      string `json:"text"`
	ChannelID string `json:"channel_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
}

func NewServer(cfg Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("ws")
	return &Server{
		addr: cfg.Addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger:  logger,
		events:  cfg.Events,
		api:     newAPIHandlers(cfg.Commands, cfg.Status),
		clients: make(map[*wsClient]struct{}),
	}
}

func (s *Server) Platform() domain.Platform {
	return domain.PlatformWeb
}

func (s *Server) SetHandler(h domain.MessageHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = h
}

func (s *Server) Connected() bool {
	return s.listening.Load()
}

func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// SetupRouter arma el engine de gin con todas las rutas de la consola.
func (s *Server) SetupRouter(ctx context.Context) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), corsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ws/chat", func(c *gin.Context) {
		s.handleWS(ctx, c.Writer, c.Request)
	})
	s.api.register(r, s)

	return r
}

// Start levanta el HTTP server y se bloquea hasta que el contexto se cancela.
func (s *Server) Start(ctx context.Context) error {
	if s.addr == "" {
		return errors.New("ws: empty listen address")
	}

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.SetupRouter(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.startRelay(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Warn("shutdown error", zap.Error(err))
		}
		s.closeClients()
	}()

	s.listening.Store(true)
	defer s.listening.Store(false)
	s.logger.Info("listening", zap.String("addr", s.addr))

	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return ctx.Err()
	}
	return err
}

// SendMessage entrega la respuesta de un comando a todos los clientes conectados.
func (s *Server) SendMessage(_ context.Context, platform domain.Platform, channelID, text string) error {
	if platform != domain.PlatformWeb {
		return fmt.Errorf("ws server does not support platform %s", platform)
	}
	return s.broadcast(envelope{Type: "reply", Data: replyPayload{ChannelID: channelID, Text: text}})
}

// startRelay se suscribe al bus antes de volver, así no se pierden eventos
// publicados justo después de arrancar.
func (s *Server) startRelay(ctx context.Context) {
	if s.events == nil {
		return
	}
	chatCh, unsubChat := s.events.Subscribe(events.TopicChatMessage)
	resultCh, unsubResult := s.events.Subscribe(events.TopicCommandResult)

	go func() {
		defer unsubChat()
		defer unsubResult()

		for {
			var (
				payload any
				topic   string
				ok      bool
			)
			select {
			case <-ctx.Done():
				return
			case payload, ok = <-chatCh:
				topic = events.TopicChatMessage
			case payload, ok = <-resultCh:
				topic = events.TopicCommandResult
			}
			if !ok {
				return
			}
			if err := s.broadcast(envelope{Type: topic, Data: payload}); err != nil {
				s.logger.Warn("relay event", zap.String("topic", topic), zap.Error(err))
			}
		}
	}()
}

func (s *Server) broadcast(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("ws: marshal: %w", err)
	}

	s.mu.RLock()
	clients := make([]*wsClient, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.RUnlock()

	for _, c := range clients {
		if err := c.writeRaw(payload); err != nil {
			s.logger.Debug("removing client after write error", zap.Error(err))
			s.removeClient(c)
		}
	}
	return nil
}

func (s *Server) handleWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade error", zap.Error(err))
		return
	}

	client := &wsClient{conn: conn}

	s.mu.Lock()
	s.clients[client] = struct{}{}
	clientCount := len(s.clients)
	s.mu.Unlock()

	s.logger.Info("client connected", zap.String("remote", r.RemoteAddr), zap.Int("clients", clientCount))

	go s.handleClient(ctx, client)
}

func (s *Server) handleClient(ctx context.Context, client *wsClient) {
	defer s.removeClient(client)

	for {
		msgType, data, err := client.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("read error", zap.Error(err))
			}
			return
		}
		if ctx.Err() != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		if err := s.dispatchIncoming(ctx, data); err != nil {
			s.logger.Warn("incoming dispatch error", zap.Error(err))
		}
	}
}

func (s *Server) removeClient(client *wsClient) {
	s.mu.Lock()
	_, ok := s.clients[client]
	delete(s.clients, client)
	clientCount := len(s.clients)
	s.mu.Unlock()

	if ok {
		client.conn.Close()
		s.logger.Info("client disconnected", zap.Int("clients", clientCount))
	}
}

func (s *Server) closeClients() {
	s.mu.Lock()
	clients := s.clients
	s.clients = make(map[*wsClient]struct{})
	s.mu.Unlock()

	for c := range clients {
		c.conn.Close()
	}
}

// dispatchIncoming acepta JSON ({"text": "..."}) o texto plano.
func (s *Server) dispatchIncoming(ctx context.Context, data []byte) error {
	payload := incomingPayload{}
	if err := json.Unmarshal(data, &payload); err != nil {
		payload = incomingPayload{Text: string(data)}
	}
	return s.deliver(ctx, payload)
}

func (s *Server) deliver(ctx context.Context, payload incomingPayload) error {
	s.mu.RLock()
	handler := s.handler
	s.mu.RUnlock()
	if handler == nil {
		return nil
	}

	msg, err := toDomainMessage(payload)
	if err != nil {
		return err
	}
	return handler(ctx, msg)
}

func toDomainMessage(payload incomingPayload) (domain.Message, error) {
	text := strings.TrimSpace(payload.Text)
	if text == "" {
		return domain.Message{}, errors.New("ws: empty incoming text")
	}

	msg := domain.Message{
		Platform:  domain.PlatformWeb,
		ChannelID: strings.TrimSpace(payload.ChannelID),
		UserID:    strings.TrimSpace(payload.UserID),
		Username:  strings.TrimSpace(payload.Username),
		Text:      text,
	}
	if msg.ChannelID == "" {
		msg.ChannelID = defaultChannelID
	}
	if msg.UserID == "" {
		msg.UserID = "web"
	}
	if msg.Username == "" {
		msg.Username = "web-user"
	}
	return msg, nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Next()
			return
		}
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
