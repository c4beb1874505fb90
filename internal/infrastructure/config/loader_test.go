package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv deja vacías todas las variables que lee el loader.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_BOT_TOKEN", "discord-token")
	t.Setenv("CHAT_WS_ADDR", "off")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, "!", cfg.CommandPrefix)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 20*time.Second, cfg.CommandTimeout)
	assert.Equal(t, "https://json.edhrec.com", cfg.EDHREC.JSONURL)
	assert.Equal(t, "https://edhrec.com", cfg.EDHREC.SiteURL)
	assert.Equal(t, "https://api.scryfall.com", cfg.Scryfall.APIURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Discord.Enabled())
	assert.False(t, cfg.Telegram.Enabled())
	assert.False(t, cfg.Twitch.Enabled())
	assert.False(t, cfg.Kick.Enabled())
	assert.False(t, cfg.Web.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_COMMAND_PREFIX", " ? ")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("COMMAND_TIMEOUT", "1m")
	t.Setenv("TWITCH_BOT_USERNAME", "mtgbot")
	t.Setenv("TWITCH_BOT_ACCESS_TOKEN", "abc")
	t.Setenv("TWITCH_BOT_CHANNELS", "#one, #two ,")
	t.Setenv("KICK_BOT_TOKEN", "kick")
	t.Setenv("KICK_BROADCASTER_USER_ID", "42")
	t.Setenv("KICK_CHATROOM_ID", "7")
	t.Setenv("KICK_BOT_USERNAME", "mtgbot")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, "?", cfg.CommandPrefix)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Minute, cfg.CommandTimeout)
	assert.Equal(t, []string{"#one", "#two"}, cfg.Twitch.Channels)
	assert.Equal(t, "oauth:abc", cfg.Twitch.OAuthToken())
	assert.True(t, cfg.Twitch.Enabled())
	assert.Equal(t, 42, cfg.Kick.BroadcasterUserID)
	assert.Equal(t, 7, cfg.Kick.ChatroomID)
	assert.Equal(t, "mtgbot", cfg.Kick.BotUsername)
	assert.True(t, cfg.Kick.Enabled())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, ":8080", cfg.Web.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "twitch token without username",
			env:     map[string]string{"TWITCH_BOT_ACCESS_TOKEN": "abc", "TWITCH_BOT_CHANNELS": "#one"},
			wantErr: "Username",
		},
		{
			name:    "kick token without chatroom",
			env:     map[string]string{"KICK_BOT_TOKEN": "kick", "KICK_BROADCASTER_USER_ID": "42"},
			wantErr: "ChatroomID",
		},
		{
			name:    "kick token without bot username",
			env:     map[string]string{"KICK_BOT_TOKEN": "kick", "KICK_BROADCASTER_USER_ID": "42", "KICK_CHATROOM_ID": "7"},
			wantErr: "BotUsername",
		},
		{
			name:    "bad provider url",
			env:     map[string]string{"DISCORD_BOT_TOKEN": "x", "SCRYFALL_API_URL": "not a url"},
			wantErr: "APIURL",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"DISCORD_BOT_TOKEN": "x", "LOG_LEVEL": "verbose"},
			wantErr: "Level",
		},
		{
			name:    "bad timeout",
			env:     map[string]string{"DISCORD_BOT_TOKEN": "x", "HTTP_TIMEOUT": "soon"},
			wantErr: "invalid format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_NoPlatform(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHAT_WS_ADDR", "off")

	_, err := load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPlatform))
}
