// Package maintenance runs the periodic log-retention pass.
package maintenance

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Michaelcode2/product-api-service/internal/config"
)

// Janitor deletes rotated log files past the retention window. Cleanup is
// best-effort: every failure is logged and swallowed, a broken log directory
// must never take the service down.
type Janitor struct {
	dir       string
	prefix    string
	retention time.Duration
	every     time.Duration
	log       *zap.SugaredLogger
	now       func() time.Time
}

func NewJanitor(cfg *config.Config, log *zap.SugaredLogger) *Janitor {
	return &Janitor{
		dir:       cfg.Log.Dir,
		prefix:    cfg.Log.FileName,
		retention: time.Duration(cfg.Log.RetentionDays) * 24 * time.Hour,
		every:     cfg.Log.CleanupEvery,
		log:       log.Named("janitor"),
		now:       time.Now,
	}
}

// Run executes cleanup once immediately, then on every tick until ctx is
// canceled. Cancellation wakes the wait immediately, keeping shutdown
// latency bounded.
func (j *Janitor) Run(ctx context.Context) {
	j.Cleanup()
	ticker := time.NewTicker(j.every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Cleanup()
		}
	}
}

// Cleanup removes files in the log directory whose names carry the active
// log's prefix and whose modification time is older than the retention
// window. Other files are never touched.
func (j *Janitor) Cleanup() {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		j.log.Errorw("cannot read log directory", "dir", j.dir, "error", err)
		return
	}

	cutoff := j.now().Add(-j.retention)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), j.prefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			j.log.Warnw("cannot stat log file", "file", entry.Name(), "error", err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(j.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			j.log.Errorw("cannot delete old log file", "file", entry.Name(), "error", err)
			continue
		}
		j.log.Infow("deleted old log file", "file", entry.Name())
	}
}

// StartLogJanitor wires the janitor into the fx lifecycle. The loop runs in
// its own goroutine; OnStop cancels it and waits for it to drain so no work
// is silently abandoned.
func StartLogJanitor(lc fx.Lifecycle, j *Janitor) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				j.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
