package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var envBindings = map[string]string{
	"command_prefix":           "BOT_COMMAND_PREFIX",
	"http_timeout":             "HTTP_TIMEOUT",
	"command_timeout":          "COMMAND_TIMEOUT",
	"user_agent":               "BOT_USER_AGENT",
	"discord.token":            "DISCORD_BOT_TOKEN",
	"telegram.token":           "TELEGRAM_BOT_TOKEN",
	"twitch.username":          "TWITCH_BOT_USERNAME",
	"twitch.token":             "TWITCH_BOT_ACCESS_TOKEN",
	"twitch.channels":          "TWITCH_BOT_CHANNELS",
	"kick.access_token":        "KICK_BOT_TOKEN",
	"kick.broadcaster_user_id": "KICK_BROADCASTER_USER_ID",
	"kick.chatroom_id":         "KICK_CHATROOM_ID",
	"kick.bot_username":        "KICK_BOT_USERNAME",
	"web.addr":                 "CHAT_WS_ADDR",
	"edhrec.json_url":          "EDHREC_JSON_URL",
	"edhrec.site_url":          "EDHREC_SITE_URL",
	"scryfall.api_url":         "SCRYFALL_API_URL",
	"log.level":                "LOG_LEVEL",
	"log.format":               "LOG_FORMAT",
}

var ErrNoPlatform = errors.New("no chat platform configured: set DISCORD_BOT_TOKEN, TELEGRAM_BOT_TOKEN, TWITCH_BOT_*, KICK_BOT_TOKEN or CHAT_WS_ADDR")

// Load lee el .env (si existe) y después las variables de entorno.
// Los tokens solo se aceptan desde el entorno.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load()
}

func load() (*Config, error) {
	v := viper.New()

	v.SetDefault("command_prefix", "!")
	v.SetDefault("http_timeout", "10s")
	v.SetDefault("command_timeout", "20s")
	v.SetDefault("user_agent", "mtgBot/1.0")
	v.SetDefault("web.addr", ":8080")
	v.SetDefault("edhrec.json_url", "https://json.edhrec.com")
	v.SetDefault("edhrec.site_url", "https://edhrec.com")
	v.SetDefault("scryfall.api_url", "https://api.scryfall.com")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid format: %w", err)
	}
	cfg.normalize()

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if !cfg.anyPlatformEnabled() {
		return nil, ErrNoPlatform
	}

	return &cfg, nil
}

func (c *Config) normalize() {
	c.CommandPrefix = strings.TrimSpace(c.CommandPrefix)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Web.Addr = strings.TrimSpace(c.Web.Addr)
	if strings.EqualFold(c.Web.Addr, "off") {
		c.Web.Addr = ""
	}

	channels := make([]string, 0, len(c.Twitch.Channels))
	for _, ch := range c.Twitch.Channels {
		ch = strings.TrimSpace(ch)
		if ch != "" {
			channels = append(channels, ch)
		}
	}
	c.Twitch.Channels = channels
}
