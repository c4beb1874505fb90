package commands

import (
	"context"

	"mtgBot/internal/domain"
)

// StartCommand responde al /start con el que Telegram abre cada chat nuevo.
type StartCommand struct{}

func NewStartCommand() *StartCommand {
	return &StartCommand{}
}

func (c *StartCommand) Name() string {
	return "start"
}

func (c *StartCommand) Aliases() []string {
	return []string{}
}

func (c *StartCommand) SupportsPlatform(p domain.Platform) bool {
	return p == domain.PlatformTelegram
}

func (c *StartCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	return cmdCtx.ReplyAll(ctx,
		welcomeReply(cmdCtx.Prefix),
		helpReply(cmdCtx.Prefix, BuiltinCommandCatalog()),
	)
}
