// Package rulings obtiene los rulings oficiales de una carta.
package rulings

import (
	"context"
	"errors"
	"fmt"

	"mtgBot/internal/domain"
)

type Service struct {
	provider domain.RulesProvider
}

func NewService(provider domain.RulesProvider) *Service {
	return &Service{provider: provider}
}

// Lookup resuelve la carta por nombre aproximado y luego pide sus rulings.
// Las dos llamadas son secuenciales.
func (s *Service) Lookup(ctx context.Context, name string) (domain.CardRulingSet, error) {
	card, err := s.provider.NamedCard(ctx, name)
	if err != nil {
		return domain.CardRulingSet{}, fmt.Errorf("named card: %w", err)
	}
	if card.RulingsURI == "" {
		return domain.CardRulingSet{}, domain.NewMalformedError("scryfall", errors.New("card without rulings_uri"))
	}

	rulings, err := s.provider.Rulings(ctx, card.RulingsURI)
	if err != nil {
		return domain.CardRulingSet{}, fmt.Errorf("rulings: %w", err)
	}

	return domain.CardRulingSet{
		CardName: card.Name,
		Rulings:  rulings,
	}, nil
}
