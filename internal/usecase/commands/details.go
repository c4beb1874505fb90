package commands

import (
	"context"

	"go.uber.org/zap"

	"mtgBot/internal/domain"
)

type DetailsCommand struct {
	decks  DeckBuilder
	logger *zap.Logger
}

func NewDetailsCommand(decks DeckBuilder, logger *zap.Logger) *DetailsCommand {
	return &DetailsCommand{decks: decks, logger: nopIfNil(logger)}
}

func (c *DetailsCommand) Name() string {
	return "details"
}

func (c *DetailsCommand) Aliases() []string {
	return catalogAliases("details")
}

func (c *DetailsCommand) SupportsPlatform(domain.Platform) bool {
	return true
}

func (c *DetailsCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	name := cmdCtx.Arg
	if name == "" {
		return cmdCtx.Reply(ctx, usageReply(cmdCtx.Prefix, descriptorFor("details").Usage))
	}

	details, err := c.decks.CardDetails(ctx, name)
	if err != nil {
		c.logger.Warn("card details failed", zap.String("card", name), zap.Error(err))
		return cmdCtx.Reply(ctx, failureReply(opDetails, name, err))
	}
	return cmdCtx.ReplyAll(ctx, cardDetailsReplies(details, name)...)
}
