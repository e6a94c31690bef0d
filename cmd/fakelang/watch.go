package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/syncthing/notify"
)

const watchDebounce = 100 * time.Millisecond

// watch runs path once and again after every change until interrupted. Each run
// uses a fresh session.
func (c *cli) watch(path string) int {
	abs, err := filepath.Abs(path)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitFailure
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Buffered so a burst of events is not dropped while a run is in progress.
	events := make(chan notify.EventInfo, 16)
	if err := notify.Watch(filepath.Dir(abs), events, notify.All); err != nil {
		fmt.Fprintf(c.stderr, "watch %s: %v\n", abs, err)
		return exitFailure
	}
	defer notify.Stop(events)

	fmt.Fprintf(c.stderr, "watching %s for changes\n", path)
	c.execute(path)
	debounce(ctx, events, func(p string) bool { return filepath.Base(p) == filepath.Base(abs) }, watchDebounce, func() {
		fmt.Fprintf(c.stderr, "--- %s changed, re-running\n", path)
		c.execute(path)
	})
	return exitOK
}

// debounce calls fn once no matching event has arrived for delay. It returns when
// ctx is done or events is closed.
func debounce(ctx context.Context, events <-chan notify.EventInfo, match func(string) bool, delay time.Duration, fn func()) {
	var timer *time.Timer
	timeout := func() <-chan time.Time {
		if timer != nil {
			return timer.C
		}
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !match(ev.Path()) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(delay)
		case <-timeout():
			timer = nil
			fn()
		}
	}
}
