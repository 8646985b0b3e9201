package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/quantmind-br/contentpack/internal/utils"
)

// DefaultDebounce is how long the watcher waits for registry writes to settle
const DefaultDebounce = 200 * time.Millisecond

// WatchOptions configures Watch
type WatchOptions struct {
	// Debounce collapses bursts of registry events into one rebuild
	Debounce time.Duration
	// OnBuild is called after every build, including the initial one
	OnBuild func(*Result, error)
}

// Watch builds the manifest once and then rebuilds it whenever the registry
// file changes, until ctx is cancelled. Build failures are logged and do not
// stop the watch.
func (o *Orchestrator) Watch(ctx context.Context, opts WatchOptions) error {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	registryPath, err := filepath.Abs(utils.ExpandPath(o.config.Registry.Path))
	if err != nil {
		return fmt.Errorf("failed to resolve registry path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files by rename, so watch the directory
	dir := filepath.Dir(registryPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	log := o.logger.WithComponent("watch")
	log.Info().
		Str("registry", registryPath).
		Dur("debounce", debounce).
		Msg("Watching registry for changes")

	rebuild := func() {
		result, err := o.Run(ctx)
		if err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("Manifest build failed")
		}
		if opts.OnBuild != nil {
			opts.OnBuild(result, err)
		}
	}

	rebuild()

	changes := make(chan struct{}, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !isRegistryChange(event, registryPath) {
					continue
				}
				log.Debug().
					Str("op", event.Op.String()).
					Str("path", event.Name).
					Msg("Registry changed")
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				log.Warn().Err(err).Msg("Watcher error")
			}
		}
	})

	g.Go(func() error {
		timer := time.NewTimer(debounce)
		timer.Stop()
		defer timer.Stop()

		for {
			select {
			case <-gctx.Done():
				return nil
			case <-changes:
				timer.Reset(debounce)
			case <-timer.C:
				rebuild()
			}
		}
	})

	err = g.Wait()
	log.Info().Msg("Stopped watching registry")
	return err
}

// isRegistryChange reports whether event wrote or recreated the registry file
func isRegistryChange(event fsnotify.Event, registryPath string) bool {
	if filepath.Clean(event.Name) != registryPath {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
