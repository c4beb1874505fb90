package domain

import "context"

type Platform string

const (
	PlatformDiscord  Platform = "discord"
	PlatformTelegram Platform = "telegram"
	PlatformTwitch   Platform = "twitch"
	PlatformKick     Platform = "kick"
	PlatformWeb      Platform = "web"
)

type Message struct {
	Platform  Platform
	ChannelID string
	UserID    string
	Username  string
	Text      string
	IsPrivate bool
}

// MessageHandler recibe los mensajes entrantes de cualquier adapter.
type MessageHandler func(ctx context.Context, msg Message) error
