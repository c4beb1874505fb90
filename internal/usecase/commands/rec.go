package commands

import (
	"context"

	"go.uber.org/zap"

	"mtgBot/internal/domain"
)

type RecCommand struct {
	decks  DeckBuilder
	logger *zap.Logger
}

func NewRecCommand(decks DeckBuilder, logger *zap.Logger) *RecCommand {
	return &RecCommand{decks: decks, logger: nopIfNil(logger)}
}

func (c *RecCommand) Name() string {
	return "rec"
}

func (c *RecCommand) Aliases() []string {
	return catalogAliases("rec")
}

func (c *RecCommand) SupportsPlatform(domain.Platform) bool {
	return true
}

func (c *RecCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	name := cmdCtx.Arg
	if name == "" {
		return cmdCtx.Reply(ctx, usageReply(cmdCtx.Prefix, descriptorFor("rec").Usage))
	}

	list, err := c.decks.Recommendations(ctx, name)
	if err != nil {
		c.logger.Warn("recommendations failed", zap.String("commander", name), zap.Error(err))
		return cmdCtx.Reply(ctx, failureReply(opRecommendations, name, err))
	}
	return cmdCtx.Reply(ctx, recommendationsReply(list))
}
