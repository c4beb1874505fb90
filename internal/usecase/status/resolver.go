package status

import (
	"sort"
	"sync"

	"mtgBot/internal/domain"
)

// Resolver guarda qué adapters están registrados y responde su estado de conexión.
type Resolver struct {
	mu        sync.RWMutex
	reporters map[domain.Platform]domain.ConnectionReporter
}

func NewResolver() *Resolver {
	return &Resolver{
		reporters: make(map[domain.Platform]domain.ConnectionReporter),
	}
}

func (r *Resolver) Set(platform domain.Platform, reporter domain.ConnectionReporter) {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if reporter == nil {
		delete(r.reporters, platform)
		return
	}
	r.reporters[platform] = reporter
}

// Snapshot devuelve el estado de cada plataforma ordenado por nombre.
func (r *Resolver) Snapshot() []domain.PlatformStatus {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	out := make([]domain.PlatformStatus, 0, len(r.reporters))
	for platform, reporter := range r.reporters {
		out = append(out, domain.PlatformStatus{
			Platform:  platform,
			Connected: reporter.Connected(),
		})
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Platform < out[j].Platform
	})
	return out
}
