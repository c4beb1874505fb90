package ws

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mtgBot/internal/domain"
	"mtgBot/internal/usecase/commands"
)

type CommandLister interface {
	List(ctx context.Context) ([]commands.CommandDTO, error)
}

type StatusSnapshotter interface {
	Snapshot() []domain.PlatformStatus
}

type apiHandlers struct {
	commands CommandLister
	status   StatusSnapshotter
}

type statusResponse struct {
	Platforms      []domain.PlatformStatus `json:"platforms"`
	ConsoleClients int                     `json:"console_clients"`
}

func newAPIHandlers(commands CommandLister, status StatusSnapshotter) *apiHandlers {
	return &apiHandlers{commands: commands, status: status}
}

func (h *apiHandlers) register(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	api.GET("/commands", h.listCommands)
	api.GET("/status", func(c *gin.Context) {
		h.platformStatus(c, s.ClientCount())
	})
	api.POST("/messages", func(c *gin.Context) {
		postMessage(c, s)
	})
}

func (h *apiHandlers) listCommands(c *gin.Context) {
	if h.commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commands unavailable"})
		return
	}
	items, err := h.commands.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list commands"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"commands": items})
}

func (h *apiHandlers) platformStatus(c *gin.Context, clients int) {
	resp := statusResponse{Platforms: []domain.PlatformStatus{}, ConsoleClients: clients}
	if h.status != nil {
		if snapshot := h.status.Snapshot(); snapshot != nil {
			resp.Platforms = snapshot
		}
	}
	c.JSON(http.StatusOK, resp)
}

// postMessage inyecta un mensaje como si llegara por el WebSocket; la
// respuesta del comando sale por los clientes conectados.
func postMessage(c *gin.Context, s *Server) {
	var req incomingPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if _, err := toDomainMessage(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	// El comando puede tardar; no se ata al ciclo de vida de la petición HTTP.
	ctx := context.WithoutCancel(c.Request.Context())
	go func() {
		if err := s.deliver(ctx, req); err != nil {
			s.logger.Warn("api message dispatch error", zap.Error(err))
		}
	}()
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
