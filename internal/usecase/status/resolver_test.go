package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mtgBot/internal/domain"
)

type staticReporter bool

func (s staticReporter) Connected() bool { return bool(s) }

func TestResolver_Snapshot(t *testing.T) {
	r := NewResolver()
	r.Set(domain.PlatformTwitch, staticReporter(false))
	r.Set(domain.PlatformDiscord, staticReporter(true))
	r.Set(domain.PlatformKick, staticReporter(true))
	r.Set(domain.PlatformKick, nil)

	assert.Equal(t, []domain.PlatformStatus{
		{Platform: domain.PlatformDiscord, Connected: true},
		{Platform: domain.PlatformTwitch, Connected: false},
	}, r.Snapshot())
}

func TestResolver_Nil(t *testing.T) {
	var r *Resolver
	r.Set(domain.PlatformWeb, staticReporter(true))
	assert.Nil(t, r.Snapshot())
}
