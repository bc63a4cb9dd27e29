package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tglauncher/internal/catalog"
	"tglauncher/internal/faults"
	"tglauncher/internal/logging"
)

const component = "watcher"

// DefaultDebounce is the quiet period required before a change burst is
// reported.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reports settled changes under the mods directory.
type Watcher struct {
	fs       *fsnotify.Watcher
	root     string
	debounce time.Duration
	onChange func()
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a watcher for the mods root. onChange runs on the watcher
// goroutine after events settle for the debounce period.
func New(root string, debounce time.Duration, onChange func(), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, faults.Wrap(faults.ErrIO, component, "new", "create fsnotify watcher", err)
	}
	return &Watcher{
		fs:       fs,
		root:     root,
		debounce: debounce,
		onChange: onChange,
		logger:   logging.WithComponent(logger, component),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; events are handled on a goroutine
// until Stop or context cancellation.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.fs.Add(w.root); err != nil {
		return faults.Wrap(faults.ErrIO, component, "start", w.root, err)
	}
	w.running = true
	w.logger.Info("watching mods directory", "path", w.root)
	go w.run(ctx)
	return nil
}

// Stop ends watching and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.fs.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if w.ignore(event.Name) {
				continue
			}
			w.logger.Debug("mods directory changed", "path", event.Name, "op", event.Op.String())
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
			pending = true
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		case <-timer.C:
			pending = false
			if w.onChange != nil {
				w.onChange()
			}
		}
	}
}

// ignore filters events from the overlay mod and from hidden files such
// as editor temp files.
func (w *Watcher) ignore(name string) bool {
	rel, err := filepath.Rel(w.root, name)
	if err != nil {
		return false
	}
	first := strings.SplitN(filepath.ToSlash(rel), "/", 2)[0]
	if first == catalog.OverlayModID || first == catalog.OverlayModID+".mod" {
		return true
	}
	return strings.HasPrefix(filepath.Base(name), ".")
}
