package domain

type PlatformStatus struct {
	Platform  Platform `json:"platform"`
	Connected bool     `json:"connected"`
}

// ConnectionReporter lo implementan los adapters de chat.
type ConnectionReporter interface {
	Connected() bool
}
