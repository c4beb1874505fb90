// Package chunk parte respuestas largas según el límite de cada plataforma.
package chunk

import (
	"strings"
	"unicode/utf8"
)

// Split agrupa líneas completas en trozos de como mucho limit runas. Una
// línea que por sí sola supera el límite se corta a la fuerza.
func Split(text string, limit int) []string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}

	var (
		out     []string
		current strings.Builder
		size    int
	)
	flush := func() {
		if current.Len() > 0 {
			out = append(out, current.String())
			current.Reset()
			size = 0
		}
	}

	for _, line := range strings.Split(text, "\n") {
		for _, piece := range hardWrap(line, limit) {
			n := utf8.RuneCountInString(piece)
			sep := 0
			if current.Len() > 0 {
				sep = 1
			}
			if size+sep+n > limit {
				flush()
				sep = 0
			}
			if sep == 1 {
				current.WriteByte('\n')
			}
			current.WriteString(piece)
			size += sep + n
		}
	}
	flush()
	return out
}

// Lines devuelve cada línea no vacía por separado, cortada a limit runas.
// Sirve para chats que no aceptan saltos de línea (IRC).
func Lines(text string, limit int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, hardWrap(line, limit)...)
	}
	return out
}

func hardWrap(line string, limit int) []string {
	if limit <= 0 || utf8.RuneCountInString(line) <= limit {
		return []string{line}
	}
	runes := []rune(line)
	out := make([]string, 0, len(runes)/limit+1)
	for len(runes) > limit {
		out = append(out, string(runes[:limit]))
		runes = runes[limit:]
	}
	if len(runes) > 0 {
		out = append(out, string(runes))
	}
	return out
}
