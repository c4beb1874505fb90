package commands

import (
	"context"

	"go.uber.org/zap"

	"mtgBot/internal/domain"
)

type RulesCommand struct {
	rulings RulingsFinder
	logger  *zap.Logger
}

func NewRulesCommand(rulings RulingsFinder, logger *zap.Logger) *RulesCommand {
	return &RulesCommand{rulings: rulings, logger: nopIfNil(logger)}
}

func (c *RulesCommand) Name() string {
	return "rules"
}

func (c *RulesCommand) Aliases() []string {
	return catalogAliases("rules")
}

func (c *RulesCommand) SupportsPlatform(domain.Platform) bool {
	return true
}

func (c *RulesCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	name := cmdCtx.Arg
	if name == "" {
		return cmdCtx.Reply(ctx, usageReply(cmdCtx.Prefix, descriptorFor("rules").Usage))
	}

	set, err := c.rulings.Lookup(ctx, name)
	if err != nil {
		c.logger.Warn("rulings failed", zap.String("card", name), zap.Error(err))
		return cmdCtx.Reply(ctx, failureReply(opRulings, name, err))
	}
	return cmdCtx.Reply(ctx, rulingsReply(set))
}
