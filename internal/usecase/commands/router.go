package commands

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"mtgBot/internal/domain"
)

type Router struct {
	prefix   string
	cmdIndex map[string]Command
	logger   *zap.Logger
}

func NewRouter(prefix string, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		prefix:   prefix,
		cmdIndex: make(map[string]Command),
		logger:   logger.Named("router"),
	}
}

func (r *Router) Prefix() string {
	return r.prefix
}

func (r *Router) Register(cmd Command) {
	r.cmdIndex[strings.ToLower(cmd.Name())] = cmd
	for _, alias := range cmd.Aliases() {
		r.cmdIndex[strings.ToLower(alias)] = cmd
	}
}

// Names devuelve los nombres registrados (sin aliases), ordenados.
func (r *Router) Names() []string {
	seen := make(map[string]struct{}, len(r.cmdIndex))
	out := make([]string, 0, len(r.cmdIndex))
	for _, cmd := range r.cmdIndex {
		name := strings.ToLower(cmd.Name())
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Resolve parsea el texto y devuelve el comando y su contexto. ok es false si
// el texto no es un comando registrado.
func (r *Router) Resolve(msg domain.Message) (Command, *Context, bool) {
	text := strings.TrimSpace(msg.Text)
	if text == "" || !strings.HasPrefix(text, r.prefix) {
		return nil, nil, false
	}

	withoutPrefix := strings.TrimSpace(strings.TrimPrefix(text, r.prefix))
	if withoutPrefix == "" {
		return nil, nil, false
	}

	name, arg := withoutPrefix, ""
	if i := strings.IndexFunc(withoutPrefix, unicode.IsSpace); i >= 0 {
		name, arg = withoutPrefix[:i], strings.TrimSpace(withoutPrefix[i:])
	}

	cmd, ok := r.cmdIndex[strings.ToLower(name)]
	if !ok {
		r.logger.Debug("unknown command", zap.String("command", name), zap.String("platform", string(msg.Platform)))
		return nil, nil, false
	}

	return cmd, &Context{
		Message: msg,
		Prefix:  r.prefix,
		Raw:     withoutPrefix,
		Arg:     arg,
		Args:    strings.Fields(arg),
	}, true
}

func (r *Router) Handle(ctx context.Context, msg domain.Message, out domain.OutgoingMessagePort) error {
	cmd, cmdCtx, ok := r.Resolve(msg)
	if !ok {
		return nil
	}
	return r.Dispatch(ctx, cmd, cmdCtx, out)
}

// Dispatch ejecuta un comando ya resuelto con Resolve.
func (r *Router) Dispatch(ctx context.Context, cmd Command, cmdCtx *Context, out domain.OutgoingMessagePort) error {
	msg := cmdCtx.Message
	if !cmd.SupportsPlatform(msg.Platform) {
		return out.SendMessage(ctx, msg.Platform, msg.ChannelID, "This command is not available here.")
	}

	cmdCtx.Out = out
	return cmd.Handle(ctx, cmdCtx)
}
