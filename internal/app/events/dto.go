package events

import (
	"time"

	"mtgBot/internal/domain"
)

// ChatMessageDTO describe el payload que se envía a la consola a través del bus.
type ChatMessageDTO struct {
	RequestID string `json:"request_id,omitempty"`
	Platform  string `json:"platform"`
	ChannelID string `json:"channel_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	IsPrivate bool   `json:"is_private"`
	Timestamp string `json:"timestamp"`
}

// NewChatMessageDTO crea un DTO serializable a partir de domain.Message.
func NewChatMessageDTO(requestID string, msg domain.Message) ChatMessageDTO {
	return ChatMessageDTO{
		RequestID: requestID,
		Platform:  string(msg.Platform),
		ChannelID: msg.ChannelID,
		UserID:    msg.UserID,
		Username:  msg.Username,
		Text:      msg.Text,
		IsPrivate: msg.IsPrivate,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// CommandResultDTO resume la ejecución de un comando.
type CommandResultDTO struct {
	RequestID  string `json:"request_id"`
	Platform   string `json:"platform"`
	ChannelID  string `json:"channel_id"`
	Command    string `json:"command"`
	Argument   string `json:"argument,omitempty"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
	Timestamp  string `json:"timestamp"`
}

func NewCommandResultDTO(requestID string, msg domain.Message, command, arg string, elapsed time.Duration, err error) CommandResultDTO {
	dto := CommandResultDTO{
		RequestID:  requestID,
		Platform:   string(msg.Platform),
		ChannelID:  msg.ChannelID,
		Command:    command,
		Argument:   arg,
		DurationMS: elapsed.Milliseconds(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err != nil {
		dto.Error = err.Error()
	}
	return dto
}
