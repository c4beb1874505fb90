package commands

import (
	"context"

	"mtgBot/internal/domain"
)

type DefineCommand struct {
	glossary KeywordGlossary
}

func NewDefineCommand(glossary KeywordGlossary) *DefineCommand {
	return &DefineCommand{glossary: glossary}
}

func (c *DefineCommand) Name() string {
	return "define"
}

func (c *DefineCommand) Aliases() []string {
	return catalogAliases("define")
}

func (c *DefineCommand) SupportsPlatform(domain.Platform) bool {
	return true
}

func (c *DefineCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	if cmdCtx.Arg == "" {
		return cmdCtx.Reply(ctx, usageReply(cmdCtx.Prefix, descriptorFor("define").Usage))
	}

	entry, ok := c.glossary.Lookup(cmdCtx.Arg)
	if !ok {
		return cmdCtx.Reply(ctx, unknownKeywordReply(cmdCtx.Arg))
	}
	return cmdCtx.Reply(ctx, definitionReply(entry))
}
