// Package threadkit provides a high-level façade over the persistence store,
// the interactive widget runtime and the widget diff engine. Most applications
// interact with this package by:
//  1. Creating a ThreadKit via New() (optionally overriding the default in-memory store)
//  2. Creating threads and appending items under an owning principal
//  3. Dispatching widget actions asynchronously (HandleAction) or synchronously (HandleActionSync)
//
// The façade delegates state transitions to workspace.Machine while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply the pebble
// store and a structured logger, most conveniently via NewFromConfig.
package threadkit

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/threadkit/config"
	"github.com/hupe1980/threadkit/core"
	"github.com/hupe1980/threadkit/logging"
	"github.com/hupe1980/threadkit/store"
	pebblestore "github.com/hupe1980/threadkit/store/pebble"
	"github.com/hupe1980/threadkit/widget"
	"github.com/hupe1980/threadkit/workspace"
)

// Options configures the ThreadKit instance.
type Options struct {
	// Store persists threads, items, attachments and widget snapshots.
	// Defaults to an in-memory implementation.
	Store core.Store

	// Logger receives action and store diagnostics. Defaults to NoOp logger
	// if nil.
	Logger logging.Logger

	// AssetBase prefixes image and favicon paths in rendered widget trees.
	AssetBase string

	// FetchDelay simulates backing-service latency when widget fixture data
	// is loaded on first access. Leave zero outside demos.
	FetchDelay time.Duration

	// EventBufferSize sets the channel buffer size for action outputs. Larger
	// buffers reduce blocking but increase memory usage.
	EventBufferSize int

	// PageLimit bounds list operations when the caller passes no limit.
	PageLimit int
}

// ThreadKit is the high-level façade aggregating the store and the widget
// runtime.
type ThreadKit struct {
	opts   Options
	store  core.Store
	logger logging.Logger
	render *workspace.Renderer
}

// New creates a new ThreadKit instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *ThreadKit {
	opts := Options{
		Store:           store.NewInMemory(),
		Logger:          logging.NoOpLogger{},
		EventBufferSize: 16,
		PageLimit:       config.DefaultPageLimit,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &ThreadKit{
		opts:   opts,
		store:  opts.Store,
		logger: opts.Logger,
		render: workspace.NewRenderer(opts.AssetBase),
	}
}

// NewFromConfig wires a ThreadKit from a loaded configuration: the selected
// storage backend, a structured logger and the asset base URL.
func NewFromConfig(cfg config.Config) (*ThreadKit, error) {
	logger := logging.NewSlogLogger(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format, false)

	var st core.Store
	switch cfg.Storage.Backend {
	case "pebble":
		ps, err := pebblestore.Open(cfg.Storage.Path, pebblestore.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("open pebble store: %w", err)
		}
		st = ps
	default:
		st = store.NewInMemory()
	}

	return New(func(o *Options) {
		o.Store = st
		o.Logger = logger
		o.AssetBase = cfg.Assets.BaseURL
		o.PageLimit = cfg.Page.DefaultLimit
	}), nil
}

// Store exposes the underlying persistence store.
func (k *ThreadKit) Store() core.Store { return k.store }

// Close releases the backing store when it holds external resources.
func (k *ThreadKit) Close() error {
	if c, ok := k.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// CreateThread persists a new thread under owner and returns it.
func (k *ThreadKit) CreateThread(ctx context.Context, owner core.Principal, title string) (core.Thread, error) {
	th := core.Thread{
		ID:        core.NewID("th"),
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	if err := k.store.SaveThread(ctx, owner, th); err != nil {
		return core.Thread{}, err
	}
	return th, nil
}

// Threads pages through owner's threads. A non-positive limit falls back to
// the configured page limit.
func (k *ThreadKit) Threads(ctx context.Context, owner core.Principal, limit int, after string, order core.Order) (core.Page[core.Thread], error) {
	if limit <= 0 {
		limit = k.opts.PageLimit
	}
	return k.store.LoadThreads(ctx, owner, limit, after, order)
}

// AddItem appends an item to its thread, filling in id and timestamp when
// unset.
func (k *ThreadKit) AddItem(ctx context.Context, owner core.Principal, item core.ThreadItem) (core.ThreadItem, error) {
	if item.ID == "" {
		item.ID = core.NewID("item")
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	if err := k.store.AddThreadItem(ctx, owner, item); err != nil {
		return core.ThreadItem{}, err
	}
	return item, nil
}

// Items pages through a thread's items. A non-positive limit falls back to
// the configured page limit.
func (k *ThreadKit) Items(ctx context.Context, owner core.Principal, threadID string, limit int, after string, order core.Order) (core.Page[core.ThreadItem], error) {
	if limit <= 0 {
		limit = k.opts.PageLimit
	}
	return k.store.LoadThreadItems(ctx, owner, threadID, limit, after, order)
}

// NewWidget creates a fresh widget instance and persists its initial
// snapshot under owner.
func (k *ThreadKit) NewWidget(ctx context.Context, owner core.Principal) (*workspace.Widget, error) {
	w := workspace.NewWidget()
	snap, err := w.Snapshot()
	if err != nil {
		return nil, err
	}
	if err := k.store.SaveWidget(ctx, owner, snap); err != nil {
		return nil, err
	}
	return w, nil
}

// LoadWidget restores a widget instance from its persisted snapshot.
func (k *ThreadKit) LoadWidget(ctx context.Context, owner core.Principal, id string) (*workspace.Widget, error) {
	snap, err := k.store.LoadWidget(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	return workspace.FromSnapshot(snap)
}

func (k *ThreadKit) machine(owner core.Principal) *workspace.Machine {
	return workspace.NewMachine(k.store, owner, k.render, func(o *workspace.MachineOptions) {
		o.Logger = k.logger
		o.FetchDelay = k.opts.FetchDelay
		o.EventBufferSize = k.opts.EventBufferSize
	})
}

// HandleAction dispatches one widget action asynchronously, returning output
// and error channels. A non-nil error means nothing was emitted or persisted.
func (k *ThreadKit) HandleAction(
	ctx context.Context,
	owner core.Principal,
	w *workspace.Widget,
	action core.Action,
	generate, save core.Producer,
) (<-chan workspace.Output, <-chan error, error) {
	return k.machine(owner).Handle(ctx, w, action, generate, save)
}

// HandleActionSync is a synchronous helper that drains the async channels and
// accumulates the outputs.
func (k *ThreadKit) HandleActionSync(
	ctx context.Context,
	owner core.Principal,
	w *workspace.Widget,
	action core.Action,
	generate, save core.Producer,
) ([]workspace.Output, error) {
	outCh, errsCh, err := k.HandleAction(ctx, owner, w, action, generate, save)
	if err != nil {
		return nil, err
	}

	var outputs []workspace.Output
	for {
		select {
		case <-ctx.Done():
			// Context cancelled - return outputs collected so far
			return outputs, ctx.Err()

		case o, ok := <-outCh:
			if !ok {
				// Output channel closed - check for terminal error
				select {
				case err := <-errsCh:
					return outputs, err
				default:
					return outputs, nil // Successful completion
				}
			}
			outputs = append(outputs, o)

		case err, ok := <-errsCh:
			if !ok {
				// Error channel closed - disable this arm and keep
				// draining outputs
				errsCh = nil
				continue
			}
			// Terminal error occurred
			if err != nil {
				return outputs, err
			}
		}
	}
}

// DiffRenders folds the rendered trees of an output sequence into the patch
// events a client would receive, diffing each tree against its predecessor.
func (k *ThreadKit) DiffRenders(outputs []workspace.Output) ([]widget.PatchEvent, error) {
	rl, _ := k.logger.(*logging.RuntimeLogger)

	var prev widget.Root
	var patches []widget.PatchEvent
	for _, o := range outputs {
		if o.Widget == nil {
			continue
		}
		if prev != nil {
			p, err := widget.Diff(prev, o.Widget)
			if err != nil {
				return nil, err
			}
			if rl != nil {
				for _, ev := range p {
					rl.LogRenderDiff(ev.Type, len(ev.Delta))
				}
			}
			patches = append(patches, p...)
		}
		prev = o.Widget
	}
	return patches, nil
}
