package app

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/taskdeck/internal/config"
	"github.com/thenoetrevino/taskdeck/internal/events"
	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/metrics"
	"github.com/thenoetrevino/taskdeck/internal/mutation"
	"github.com/thenoetrevino/taskdeck/internal/projections"
	"github.com/thenoetrevino/taskdeck/internal/querycache"
	"github.com/thenoetrevino/taskdeck/internal/store"
)

// App holds all application components and provides dependency injection.
// This is the main application container that manages their lifecycles.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	// Remote API
	Gateway *gateway.Client

	// Local state
	Store     *store.Store
	Resources *querycache.Resources
	Registry  *querycache.Registry
	Projector *projections.Projector

	// Writes
	Coordinator *mutation.Coordinator

	// Event system for cache invalidation
	Events events.EventPublisher

	Metrics *metrics.Metrics

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	ownsBus   bool
	closeOnce sync.Once
	reloadCh  chan struct{}
}

// New creates a new App with all components initialized.
// This is the single entry point for creating the application container.
func New(cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}

	a := &App{
		Config:  cfg,
		Logger:  ac.logger,
		Metrics: metrics.NewMetrics(),
	}
	if ac.registerer != nil {
		a.Metrics.WithCollectors(metrics.NewCollectors(ac.registerer))
	}

	a.Events = ac.eventClient
	if a.Events == nil {
		a.Events = events.NewBus(events.DefaultQueueSize)
		a.ownsBus = true
	}

	gwOpts := []gateway.Option{
		gateway.WithTimeout(cfg.API.Timeout),
		gateway.WithRetries(cfg.API.RetryCount()),
		gateway.WithRecorder(a.Metrics),
	}
	if ac.httpClient != nil {
		gwOpts = append(gwOpts, gateway.WithHTTPClient(ac.httpClient))
	}
	a.Gateway = gateway.New(cfg.API.BaseURL, gwOpts...)

	a.Store = store.New()
	a.Resources, a.Registry = querycache.NewResources(a.Gateway, cfg.Cache.StaleTime)
	a.Projector = projections.NewProjector(a.Store)
	a.Coordinator = mutation.NewCoordinator(
		a.Gateway,
		a.Store,
		mutation.UsersFunc(a.Resources.UsersSnapshot),
		a.Events,
		mutation.WithMetrics(a.Metrics),
	)

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	// Subscribe before starting workers so no early event is missed
	cacheEvents, unsubscribeCaches := a.Events.Subscribe()
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer unsubscribeCaches()
		a.Registry.Consume(ctx, cacheEvents)
	}()

	if ac.refetchOnInvalidate {
		a.reloadCh = make(chan struct{}, 1)
		reloadEvents, unsubscribeReloads := a.Events.Subscribe()
		a.wg.Add(2)
		go func() {
			defer a.wg.Done()
			defer unsubscribeReloads()
			a.watchInvalidations(ctx, reloadEvents)
		}()
		go func() {
			defer a.wg.Done()
			a.reloadLoop(ctx)
		}()
	}

	a.Logger.Debug("app initialized",
		"base_url", cfg.API.BaseURL,
		"refetch_on_invalidate", ac.refetchOnInvalidate)
	return a
}

// LoadInitial fetches tasks, boards and users concurrently.
// A failed task load leaves the store Failed with its previous items.
// Board and user failures are returned but never cancel the task load.
func (a *App) LoadInitial(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		return a.ReloadTasks(ctx)
	})
	g.Go(func() error {
		_, err := a.Resources.ListBoards(ctx)
		return err
	})
	g.Go(func() error {
		_, err := a.Resources.ListUsers(ctx)
		return err
	})

	return g.Wait()
}

// ReloadTasks refreshes the task store from the API
func (a *App) ReloadTasks(ctx context.Context) error {
	err := a.Store.Load(ctx, a.Gateway.ListTasks)
	if err != nil {
		a.Logger.Warn("task load failed", "error", err)
		return err
	}
	a.Metrics.IncStoreReloads()
	publishErr := a.Events.Publish(events.Event{Type: events.EventStoreReloaded})
	if publishErr != nil {
		a.Logger.Debug("store reload not published", "error", publishErr)
	}
	return nil
}

// watchInvalidations requests a store reload whenever the task list is invalidated
func (a *App) watchInvalidations(ctx context.Context, ch <-chan events.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			if e.Type != events.EventInvalidate || !e.Matches(events.TasksKey()) {
				continue
			}
			// Coalesce bursts into a single pending reload
			select {
			case a.reloadCh <- struct{}{}:
			default:
			}
		}
	}
}

func (a *App) reloadLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-a.reloadCh:
			_ = a.ReloadTasks(ctx)
		}
	}
}

// Close stops background workers and the bus if the app created it
func (a *App) Close() error {
	var err error
	a.closeOnce.Do(func() {
		a.cancel()
		if a.ownsBus {
			err = a.Events.Close()
		}
		a.wg.Wait()
	})
	return err
}
