package commands

import (
	"context"

	"go.uber.org/zap"

	"mtgBot/internal/domain"
)

type SearchCommand struct {
	decks  DeckBuilder
	logger *zap.Logger
}

func NewSearchCommand(decks DeckBuilder, logger *zap.Logger) *SearchCommand {
	return &SearchCommand{decks: decks, logger: nopIfNil(logger)}
}

func (c *SearchCommand) Name() string {
	return "search"
}

func (c *SearchCommand) Aliases() []string {
	return catalogAliases("search")
}

func (c *SearchCommand) SupportsPlatform(domain.Platform) bool {
	return true
}

func (c *SearchCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	name := cmdCtx.Arg
	if name == "" {
		return cmdCtx.Reply(ctx, usageReply(cmdCtx.Prefix, descriptorFor("search").Usage))
	}

	result, err := c.decks.Commander(ctx, name)
	if err != nil {
		c.logger.Warn("search failed", zap.String("commander", name), zap.Error(err))
		return cmdCtx.Reply(ctx, failureReply(opSearch, name, err))
	}
	return cmdCtx.ReplyAll(ctx, commanderReplies(result)...)
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
