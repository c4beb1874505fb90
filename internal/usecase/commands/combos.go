package commands

import (
	"context"

	"go.uber.org/zap"

	"mtgBot/internal/domain"
)

type CombosCommand struct {
	decks  DeckBuilder
	logger *zap.Logger
}

func NewCombosCommand(decks DeckBuilder, logger *zap.Logger) *CombosCommand {
	return &CombosCommand{decks: decks, logger: nopIfNil(logger)}
}

func (c *CombosCommand) Name() string {
	return "combos"
}

func (c *CombosCommand) Aliases() []string {
	return catalogAliases("combos")
}

func (c *CombosCommand) SupportsPlatform(domain.Platform) bool {
	return true
}

func (c *CombosCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	name := cmdCtx.Arg
	if name == "" {
		return cmdCtx.Reply(ctx, usageReply(cmdCtx.Prefix, descriptorFor("combos").Usage))
	}

	result, err := c.decks.Combos(ctx, name)
	if err != nil {
		c.logger.Warn("combos failed",
			zap.String("commander", name),
			zap.Int("status", domain.StatusCodeOf(err)),
			zap.Error(err),
		)
		return cmdCtx.Reply(ctx, failureReply(opCombos, name, err))
	}
	return cmdCtx.Reply(ctx, comboReply(result))
}
