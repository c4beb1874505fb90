package config

import (
	"strings"
	"time"
)

type Config struct {
	CommandPrefix  string        `mapstructure:"command_prefix" validate:"required,max=3"`
	HTTPTimeout    time.Duration `mapstructure:"http_timeout" validate:"gt=0"`
	CommandTimeout time.Duration `mapstructure:"command_timeout" validate:"gt=0"`
	UserAgent      string        `mapstructure:"user_agent" validate:"required"`

	Discord  DiscordConfig  `mapstructure:"discord"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Twitch   TwitchConfig   `mapstructure:"twitch"`
	Kick     KickConfig     `mapstructure:"kick"`
	Web      WebConfig      `mapstructure:"web"`

	EDHREC   EDHRECConfig   `mapstructure:"edhrec"`
	Scryfall ScryfallConfig `mapstructure:"scryfall"`
	Log      LogConfig      `mapstructure:"log"`
}

type DiscordConfig struct {
	Token string `mapstructure:"token"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

type TwitchConfig struct {
	Username string   `mapstructure:"username" validate:"required_with=Token"`
	Token    string   `mapstructure:"token" validate:"required_with=Username"`
	Channels []string `mapstructure:"channels" validate:"required_with=Username"`
}

type KickConfig struct {
	AccessToken       string `mapstructure:"access_token"`
	BroadcasterUserID int    `mapstructure:"broadcaster_user_id" validate:"required_with=AccessToken"`
	ChatroomID        int    `mapstructure:"chatroom_id" validate:"required_with=AccessToken"`
	BotUsername       string `mapstructure:"bot_username" validate:"required_with=AccessToken"`
}

type WebConfig struct {
	// Addr "off" (o vacío) deshabilita la consola web.
	Addr string `mapstructure:"addr"`
}

type EDHRECConfig struct {
	JSONURL string `mapstructure:"json_url" validate:"required,url"`
	SiteURL string `mapstructure:"site_url" validate:"required,url"`
}

type ScryfallConfig struct {
	APIURL string `mapstructure:"api_url" validate:"required,url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

func (c DiscordConfig) Enabled() bool  { return c.Token != "" }
func (c TelegramConfig) Enabled() bool { return c.Token != "" }
func (c TwitchConfig) Enabled() bool   { return c.Username != "" && c.Token != "" && len(c.Channels) > 0 }
func (c KickConfig) Enabled() bool     { return c.AccessToken != "" }
func (c WebConfig) Enabled() bool      { return c.Addr != "" }

// OAuthToken devuelve el token con el prefijo "oauth:" que pide el IRC de Twitch.
func (c TwitchConfig) OAuthToken() string {
	if c.Token == "" || strings.HasPrefix(c.Token, "oauth:") {
		return c.Token
	}
	return "oauth:" + c.Token
}

func (c *Config) anyPlatformEnabled() bool {
	return c.Discord.Enabled() || c.Telegram.Enabled() || c.Twitch.Enabled() || c.Kick.Enabled() || c.Web.Enabled()
}
