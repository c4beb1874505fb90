// Package glossary resuelve definiciones de habilidades clave de Magic.
package glossary

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"mtgBot/internal/domain"
)

//go:embed keywords.toml
var defaultKeywords []byte

type file struct {
	Keywords map[string]string `toml:"keywords"`
}

// Store es de solo lectura después de construirse; se puede compartir entre goroutines.
type Store struct {
	entries map[string]string
}

// NewDefaultStore carga la tabla de keywords embebida en el binario.
func NewDefaultStore() (*Store, error) {
	return Parse(defaultKeywords)
}

func Parse(data []byte) (*Store, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("glossary: parse: %w", err)
	}
	if len(f.Keywords) == 0 {
		return nil, fmt.Errorf("glossary: no keywords defined")
	}

	entries := make(map[string]string, len(f.Keywords))
	for term, def := range f.Keywords {
		key := normalize(term)
		if key == "" {
			return nil, fmt.Errorf("glossary: empty keyword")
		}
		if _, dup := entries[key]; dup {
			return nil, fmt.Errorf("glossary: duplicate keyword %q", key)
		}
		entries[key] = def
	}

	return &Store{entries: entries}, nil
}

// Lookup busca la keyword sin distinguir mayúsculas. Un miss no es un error.
func (s *Store) Lookup(query string) (domain.KeywordEntry, bool) {
	key := normalize(query)
	def, ok := s.entries[key]
	if !ok {
		return domain.KeywordEntry{}, false
	}
	return domain.KeywordEntry{Term: capitalize(key), Definition: def}, true
}

func (s *Store) Terms() []string {
	out := make([]string, 0, len(s.entries))
	for term := range s.entries {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

func (s *Store) Len() int {
	return len(s.entries)
}

func normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// capitalize pone en mayúscula la primera letra y el resto en minúsculas.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
