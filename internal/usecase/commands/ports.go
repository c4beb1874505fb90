package commands

import (
	"context"

	"mtgBot/internal/domain"
)

type KeywordGlossary interface {
	Lookup(query string) (domain.KeywordEntry, bool)
}

type DeckBuilder interface {
	Commander(ctx context.Context, name string) (domain.CommanderQueryResult, error)
	Recommendations(ctx context.Context, name string) (domain.RecommendationList, error)
	Combos(ctx context.Context, name string) (domain.ComboResult, error)
	CardDetails(ctx context.Context, name string) (domain.CardDetails, error)
}

type RulingsFinder interface {
	Lookup(ctx context.Context, name string) (domain.CardRulingSet, error)
}
