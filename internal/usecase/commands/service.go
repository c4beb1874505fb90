package commands

import (
	"context"
)

type CommandDTO struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases"`
	Description string   `json:"description,omitempty"`
	Usage       string   `json:"usage,omitempty"`
}

// Service expone el catálogo de comandos a la API HTTP.
type Service struct {
	prefix string
}

func NewService(prefix string) *Service {
	return &Service{prefix: prefix}
}

func (s *Service) List(_ context.Context) ([]CommandDTO, error) {
	prefix := ""
	if s != nil {
		prefix = s.prefix
	}

	catalog := BuiltinCommandCatalog()
	out := make([]CommandDTO, 0, len(catalog))
	for _, item := range catalog {
		aliases := append([]string(nil), item.Aliases...)
		if aliases == nil {
			aliases = []string{}
		}
		out = append(out, CommandDTO{
			Name:        item.Name,
			Aliases:     aliases,
			Description: item.Description,
			Usage:       prefix + item.Usage,
		})
	}
	return out, nil
}
