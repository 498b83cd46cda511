// cmd/s7probe/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tamzrod/s7probe/internal/config"
	"github.com/tamzrod/s7probe/internal/poller"
	"github.com/tamzrod/s7probe/internal/status"
	"github.com/tamzrod/s7probe/internal/writer"
)

func main() {
	var (
		debug = flag.Bool("debug", false, "Development logging")
		once  = flag.Bool("once", false, "Poll once, print, and exit")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: s7probe [-debug] [-once] <config.yaml>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log := newLogger(*debug)
	defer func() { _ = log.Sync() }()

	if err := run(flag.Arg(0), *once, log); err != nil {
		log.Error("s7probe stopped", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(debug bool) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func run(cfgPath string, once bool, log *zap.Logger) error {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Build pipeline
	// --------------------

	p, closePoller, err := poller.Build(cfg, log.Named("poller"))
	if err != nil {
		return fmt.Errorf("poller build failed: %w", err)
	}
	defer closePoller()

	out, closeOut, err := writer.Build(cfg)
	if err != nil {
		return fmt.Errorf("writer build failed: %w", err)
	}
	defer closeOut()

	if once {
		return out.Write(p.PollOnce(ctx))
	}

	// Status writer (optional) gets its own connection.
	var statusWriter writer.StatusWriter
	if plan := writer.BuildStatusPlan(cfg); plan != nil {
		tr, err := poller.DialSource(cfg.Probe.Source)
		if err != nil {
			return fmt.Errorf("status transport failed: %w", err)
		}
		defer tr.Close()

		sw, _ := writer.NewDeviceStatusWriter(plan, tr)
		statusWriter = sw
	}

	log.Info("probe started",
		zap.String("endpoint", cfg.Probe.Source.Endpoint),
		zap.Int("tags", len(cfg.Probe.Tags)),
		zap.Int("interval_ms", cfg.Probe.Poll.IntervalMs),
		zap.Bool("status", statusWriter != nil),
	)

	// ---- channel between poller and writer ----
	results := make(chan poller.PollResult)

	// poller producer
	go p.Run(ctx, results)

	orchestrate(ctx, results, out, statusWriter, log)

	log.Info("probe stopped")
	return nil
}

// orchestrate owns the status state and a 1Hz seconds ticker.
// It returns when ctx is done.
func orchestrate(ctx context.Context, results <-chan poller.PollResult, out writer.Writer, sw writer.StatusWriter, log *zap.Logger) {
	tracker := status.NewTracker()

	secTicker := time.NewTicker(time.Second)
	defer secTicker.Stop()

	push := func(reason string) {
		if sw == nil {
			return
		}
		if err := sw.WriteStatus(ctx, tracker.Snapshot()); err != nil {
			log.Warn("status write failed", zap.String("reason", reason), zap.Error(err))
		}
	}

	// Full block write on start (identity re-assert) if enabled.
	push("start")

	for {
		select {
		case <-ctx.Done():
			return

		case res := <-results:
			// --- data delivery ---
			if err := out.Write(res); err != nil {
				log.Warn("output write failed", zap.Error(err))
			}
			if res.Err != nil {
				log.Debug("poll failed", zap.Error(res.Err), zap.Uint32("code", res.RawErrorCode))
			}

			// --- status update (device-level truth) ---
			if tracker.Observe(res.RawErrorCode, res.DecodeFailed()) {
				push("poll")
			}

		case <-secTicker.C:
			if tracker.Tick() {
				push("tick")
			}
		}
	}
}
