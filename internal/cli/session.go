package cli

import (
	"sync"

	"github.com/charmbracelet/log"

	"lazypager/internal/config"
	"lazypager/internal/domain"
	"lazypager/internal/eventbus"
)

// sessionWriter persists the settled page and pager settings to the config file
type sessionWriter struct {
	mu     sync.Mutex
	svc    config.ConfigService
	cfg    *config.Config
	bus    eventbus.EventBus
	logger *log.Logger
}

func newSessionWriter(svc config.ConfigService, cfg *config.Config, bus eventbus.EventBus, logger *log.Logger) *sessionWriter {
	return &sessionWriter{svc: svc, cfg: cfg, bus: bus, logger: logger.WithPrefix("session")}
}

// subscribe saves on page and settings changes until the returned func is called
func (w *sessionWriter) subscribe() func() {
	unsubPage := w.bus.Subscribe(eventbus.EventPageChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageChangedEvent); ok {
			w.update(func(cfg *config.Config) { cfg.Session.LastPage = event.Index })
		}
	})
	unsubSettings := w.bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			w.update(func(cfg *config.Config) {
				cfg.Session.LastPage = event.LastPage
				cfg.Circular = event.Circular
				cfg.Autoplay.Enabled = event.Autoplay
			})
		}
	})
	return func() {
		unsubPage()
		unsubSettings()
	}
}

// record saves a final snapshot of the pager
func (w *sessionWriter) record(status domain.PagerStatus) error {
	return w.update(func(cfg *config.Config) {
		if status.PageCount > 0 {
			cfg.Session.LastPage = status.CurrentPage
		}
		cfg.Circular = status.Circular
		cfg.Autoplay.Enabled = status.Autoplay
	})
}

func (w *sessionWriter) update(apply func(*config.Config)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	apply(w.cfg)
	if w.cfg.Session.LastPage < 0 {
		w.cfg.Session.LastPage = 0
	}
	if err := w.svc.Save(w.cfg); err != nil {
		w.logger.Error("failed to save config", "path", w.svc.Path(), "err", err)
		w.bus.Publish(eventbus.ErrorEvent{Message: "failed to save config", Err: err})
		return err
	}
	w.logger.Debug("config saved", "path", w.svc.Path(), "page", w.cfg.Session.LastPage)
	return nil
}
