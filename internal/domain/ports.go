package domain

import "context"

//go:generate mockgen -source=ports.go -destination=../mocks/domain/mock_ports.go -package=mock_domain

type OutgoingMessagePort interface {
	SendMessage(ctx context.Context, platform Platform, channelID, text string) error
}

// DeckDataProvider lee las páginas de EDHREC (comandantes, combos y cartas).
type DeckDataProvider interface {
	CommanderPage(ctx context.Context, name string) (CommanderPage, error)
	ComboPage(ctx context.Context, name string) (ComboPage, error)
	CardDetails(ctx context.Context, name string) (CardDetails, error)
}

// RulesProvider resuelve cartas y sus rulings en Scryfall.
type RulesProvider interface {
	NamedCard(ctx context.Context, fuzzyName string) (Card, error)
	Rulings(ctx context.Context, rulingsURI string) ([]Ruling, error)
}

// Picker elige un índice en [0, n). Se inyecta para que los tests sean deterministas.
type Picker interface {
	IntN(n int) int
}
