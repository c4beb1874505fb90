package commands

import (
	"context"

	"mtgBot/internal/domain"
)

type Command interface {
	Name() string
	Aliases() []string
	SupportsPlatform(p domain.Platform) bool
	Handle(ctx context.Context, c *Context) error
}

type Context struct {
	Message domain.Message
	Out     domain.OutgoingMessagePort
	Prefix  string

	// Raw es el texto sin prefijo; Arg es todo lo que sigue al nombre del
	// comando, sin espacios en los extremos. Args es Arg partido por espacios.
	Raw  string
	Arg  string
	Args []string
}

// Reply responde en el canal de origen.
func (c *Context) Reply(ctx context.Context, text string) error {
	return c.Out.SendMessage(ctx, c.Message.Platform, c.Message.ChannelID, text)
}

// ReplyAll envía varios mensajes en orden y se detiene en el primer error.
func (c *Context) ReplyAll(ctx context.Context, texts ...string) error {
	for _, text := range texts {
		if err := c.Reply(ctx, text); err != nil {
			return err
		}
	}
	return nil
}
