package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"mtgBot/internal/app"
	"mtgBot/internal/app/events"
	"mtgBot/internal/domain"
	"mtgBot/internal/infrastructure/config"
	"mtgBot/internal/infrastructure/provider/edhrec"
	"mtgBot/internal/infrastructure/provider/scryfall"
	discordadapter "mtgBot/internal/interface/adapters/discord"
	kickadapter "mtgBot/internal/interface/adapters/kick"
	telegramadapter "mtgBot/internal/interface/adapters/telegram"
	twitchadapter "mtgBot/internal/interface/adapters/twitch"
	ws "mtgBot/internal/interface/api/ws"
	"mtgBot/internal/interface/outs"
	"mtgBot/internal/usecase/commands"
	"mtgBot/internal/usecase/deckbuilding"
	"mtgBot/internal/usecase/glossary"
	"mtgBot/internal/usecase/handle_message"
	"mtgBot/internal/usecase/rulings"
	statususecase "mtgBot/internal/usecase/status"
)

type Options struct {
	Config *config.Config
	Logger *zap.Logger
}

type Runtime struct {
	ctx        context.Context
	cancel     context.CancelFunc
	cfg        *config.Config
	logger     *zap.Logger
	platform   *app.PlatformManager
	multiOut   *outs.MultiSender
	bus        *events.Bus
	commandSvc *commands.Service
	status     *statususecase.Resolver
	dispatcher domain.MessageHandler

	mu      sync.Mutex
	started bool
}

func Start(ctx context.Context, opts Options) (*Runtime, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router, err := buildRouter(cfg, logger)
	if err != nil {
		return nil, err
	}

	runtimeCtx, cancel := context.WithCancel(ctx)

	bus := events.NewBus(logger)
	multiOut := outs.NewMultiSender(logger)
	statusResolver := statususecase.NewResolver()
	commandSvc := commands.NewService(cfg.CommandPrefix)

	platformMgr := app.NewPlatformManager(app.ManagerConfig{
		Context:  runtimeCtx,
		Resolver: statusResolver,
		MultiOut: multiOut,
		Logger:   logger,
	})

	uc := handle_message.NewInteractor(multiOut, router, handle_message.Config{
		CommandTimeout: cfg.CommandTimeout,
		Publisher:      bus,
		Logger:         logger,
	})

	run := &Runtime{
		ctx:        runtimeCtx,
		cancel:     cancel,
		cfg:        cfg,
		logger:     logger,
		platform:   platformMgr,
		multiOut:   multiOut,
		bus:        bus,
		commandSvc: commandSvc,
		status:     statusResolver,
		dispatcher: uc.Handle,
	}
	platformMgr.SetHandler(run.dispatcher)

	for _, adapter := range buildAdapters(cfg, logger, bus, commandSvc, statusResolver) {
		if err := platformMgr.Enable(adapter); err != nil {
			run.Stop()
			return nil, fmt.Errorf("enable %s: %w", adapter.Platform(), err)
		}
	}

	run.started = true
	logger.Info("bot started",
		zap.String("prefix", cfg.CommandPrefix),
		zap.Any("platforms", platformMgr.Platforms()),
	)
	return run, nil
}

// buildRouter arma los proveedores, los servicios y registra todos los comandos.
func buildRouter(cfg *config.Config, logger *zap.Logger) (*commands.Router, error) {
	keywords, err := glossary.NewDefaultStore()
	if err != nil {
		return nil, fmt.Errorf("glossary: %w", err)
	}

	edhrecClient := edhrec.NewClient(edhrec.Config{
		JSONBaseURL: cfg.EDHREC.JSONURL,
		SiteURL:     cfg.EDHREC.SiteURL,
		Timeout:     cfg.HTTPTimeout,
		UserAgent:   cfg.UserAgent,
	})
	scryfallClient := scryfall.NewClient(scryfall.Config{
		BaseURL:   cfg.Scryfall.APIURL,
		Timeout:   cfg.HTTPTimeout,
		UserAgent: cfg.UserAgent,
	})

	decks := deckbuilding.NewService(edhrecClient, deckbuilding.NewRandomPicker(), deckbuilding.Config{
		SiteURL: cfg.EDHREC.SiteURL,
	})
	rulingSvc := rulings.NewService(scryfallClient)

	cmdLogger := logger.Named("commands")
	router := commands.NewRouter(cfg.CommandPrefix, logger)
	router.Register(commands.NewPingCommand())
	router.Register(commands.NewHelpCommand())
	router.Register(commands.NewStartCommand())
	router.Register(commands.NewDefineCommand(keywords))
	router.Register(commands.NewSearchCommand(decks, cmdLogger))
	router.Register(commands.NewRecCommand(decks, cmdLogger))
	router.Register(commands.NewCombosCommand(decks, cmdLogger))
	router.Register(commands.NewDetailsCommand(decks, cmdLogger))
	router.Register(commands.NewRulesCommand(rulingSvc, cmdLogger))
	return router, nil
}

// buildAdapters devuelve un adapter por cada plataforma con credenciales.
func buildAdapters(
	cfg *config.Config,
	logger *zap.Logger,
	bus *events.Bus,
	commandSvc *commands.Service,
	status *statususecase.Resolver,
) []app.ChatAdapter {
	var adapters []app.ChatAdapter

	if cfg.Discord.Enabled() {
		adapters = append(adapters, discordadapter.NewAdapter(discordadapter.Config{
			Token: cfg.Discord.Token,
		}, logger))
	}
	if cfg.Telegram.Enabled() {
		adapters = append(adapters, telegramadapter.NewAdapter(telegramadapter.Config{
			Token:  cfg.Telegram.Token,
			Prefix: cfg.CommandPrefix,
		}, logger))
	}
	if cfg.Twitch.Enabled() {
		adapters = append(adapters, twitchadapter.NewAdapter(twitchadapter.Config{
			Username:   cfg.Twitch.Username,
			OAuthToken: cfg.Twitch.OAuthToken(),
			Channels:   cfg.Twitch.Channels,
		}, logger))
	}
	if cfg.Kick.Enabled() {
		adapters = append(adapters, kickadapter.NewAdapter(kickadapter.Config{
			AccessToken:       cfg.Kick.AccessToken,
			BroadcasterUserID: cfg.Kick.BroadcasterUserID,
			ChatroomID:        cfg.Kick.ChatroomID,
			BotUsername:       cfg.Kick.BotUsername,
		}, logger))
	}
	if cfg.Web.Enabled() {
		adapters = append(adapters, ws.NewServer(ws.Config{
			Addr:     cfg.Web.Addr,
			Commands: commandSvc,
			Status:   status,
			Events:   bus,
		}, logger))
	}

	return adapters
}

func (r *Runtime) Stop() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cancel()
	r.platform.Shutdown()
	r.bus.Close()
	if r.started {
		r.logger.Info("bot stopped")
	}
	r.started = false
}

func (r *Runtime) Bus() *events.Bus {
	if r == nil {
		return nil
	}
	return r.bus
}

func (r *Runtime) CommandService() *commands.Service {
	if r == nil {
		return nil
	}
	return r.commandSvc
}

func (r *Runtime) StatusResolver() *statususecase.Resolver {
	if r == nil {
		return nil
	}
	return r.status
}

func (r *Runtime) Config() *config.Config {
	if r == nil {
		return nil
	}
	return r.cfg
}

// DispatchMessage procesa un mensaje como si llegara de un adapter.
func (r *Runtime) DispatchMessage(ctx context.Context, msg domain.Message) error {
	if r == nil || r.dispatcher == nil {
		return errors.New("dispatcher unavailable")
	}
	return r.dispatcher(ctx, msg)
}
