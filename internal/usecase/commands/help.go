package commands

import (
	"context"

	"mtgBot/internal/domain"
)

type HelpCommand struct{}

func NewHelpCommand() *HelpCommand {
	return &HelpCommand{}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Aliases() []string {
	return catalogAliases("help")
}

func (c *HelpCommand) SupportsPlatform(domain.Platform) bool {
	return true
}

func (c *HelpCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	return cmdCtx.Reply(ctx, helpReply(cmdCtx.Prefix, BuiltinCommandCatalog()))
}
