// Package deckbuilding arma las respuestas de EDHREC: decks, recomendaciones,
// combos y detalles de carta.
package deckbuilding

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"mtgBot/internal/domain"
)

type Config struct {
	// SiteURL es la raíz pública de EDHREC a la que se concatenan los paths de combos.
	SiteURL string
}

type Service struct {
	provider domain.DeckDataProvider
	picker   domain.Picker
	siteURL  string
}

func NewService(provider domain.DeckDataProvider, picker domain.Picker, cfg Config) *Service {
	if picker == nil {
		picker = NewRandomPicker()
	}
	return &Service{
		provider: provider,
		picker:   picker,
		siteURL:  strings.TrimRight(cfg.SiteURL, "/"),
	}
}

func (s *Service) Commander(ctx context.Context, name string) (domain.CommanderQueryResult, error) {
	page, err := s.provider.CommanderPage(ctx, name)
	if err != nil {
		return domain.CommanderQueryResult{}, fmt.Errorf("commander page: %w", err)
	}

	result := domain.CommanderQueryResult{
		Commander:   name,
		DeckListURI: page.DeckListURI,
	}
	if len(page.Similar) > 0 {
		similar := page.Similar[s.picker.IntN(len(page.Similar))]
		if similar.DeckListURI == "" {
			return domain.CommanderQueryResult{}, fmt.Errorf("similar commander %q: %w", similar.Name,
				domain.NewMalformedError("edhrec", errors.New("missing field moxfield_uri")))
		}
		result.SimilarDeckListURI = similar.DeckListURI
	}
	return result, nil
}

func (s *Service) Recommendations(ctx context.Context, name string) (domain.RecommendationList, error) {
	page, err := s.provider.CommanderPage(ctx, name)
	if err != nil {
		return domain.RecommendationList{}, fmt.Errorf("commander page: %w", err)
	}

	return domain.RecommendationList{
		Commander: name,
		Names:     TopSynergy(page.CardLists),
	}, nil
}

// TopSynergy recorre las listas en orden y toma de cada una hasta
// MaxRecommendationsPerList cartas con synergy >= SynergyThreshold, de mayor
// a menor. Los empates conservan el orden del proveedor.
func TopSynergy(lists []domain.CardList) []string {
	var names []string
	for _, list := range lists {
		cards := make([]domain.CardView, len(list.Cards))
		copy(cards, list.Cards)
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].Synergy > cards[j].Synergy
		})

		count := 0
		for _, card := range cards {
			if count == domain.MaxRecommendationsPerList || card.Synergy < domain.SynergyThreshold {
				break
			}
			names = append(names, card.Name)
			count++
		}
	}
	return names
}

func (s *Service) Combos(ctx context.Context, name string) (domain.ComboResult, error) {
	page, err := s.provider.ComboPage(ctx, name)
	if err != nil {
		return domain.ComboResult{}, fmt.Errorf("combo page: %w", err)
	}

	result := domain.ComboResult{
		Commander: name,
		Header:    page.Header,
		Total:     len(page.Combos),
	}
	if result.Empty() {
		return result, nil
	}
	if page.AllCombosPath == "" {
		return domain.ComboResult{}, domain.NewMalformedError("edhrec", errors.New("combo page without breadcrumb path"))
	}

	combo := page.Combos[s.picker.IntN(len(page.Combos))]
	result.ComboName = combo.Header
	result.ComboURL = s.siteURL + combo.Href
	result.AllCombosURL = s.siteURL + page.AllCombosPath
	return result, nil
}

func (s *Service) CardDetails(ctx context.Context, name string) (domain.CardDetails, error) {
	details, err := s.provider.CardDetails(ctx, name)
	if err != nil {
		return domain.CardDetails{}, fmt.Errorf("card details: %w", err)
	}
	if details.Name == "" {
		details.Name = name
	}
	return details, nil
}
