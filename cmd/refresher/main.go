package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"coindash-api/internal/cli"
	"coindash-api/internal/config"
	"coindash-api/internal/svc"
	"coindash-api/pkg/market"
)

const (
	fetchTimeout    = 15 * time.Second // Timeout for one tiered fetch pass per pair
	shutdownTimeout = 10 * time.Second // Grace period for shutdown
)

var configFile = flag.String("f", "etc/coindash.yaml", "the config file")

func main() {
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Println("[main] Starting auto-refresher...")

	appCfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("[main] Failed to load app config: %v", err)
	}

	log.Printf("[main] Configuration loaded:")
	for _, line := range cli.ConfigSummaryLines(appCfg) {
		log.Printf("  - %s", line)
	}

	serviceCtx := svc.NewServiceContext(*appCfg)

	symbols := appCfg.Refresher.Symbols
	if len(symbols) == 0 {
		for _, asset := range market.SupportedAssets {
			symbols = append(symbols, asset.Symbol)
		}
	}
	intervals := appCfg.Refresher.Intervals
	if len(intervals) == 0 {
		intervals = []string{string(market.Interval1d)}
	}
	refreshEvery := time.Duration(appCfg.Refresher.IntervalSeconds) * time.Second

	log.Printf("  - Symbols: %v", symbols)
	log.Printf("  - Intervals: %v", intervals)
	log.Printf("  - Refresh cadence: %s", refreshEvery)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		runRefresher(ctx, serviceCtx.Fetcher, symbols, intervals, refreshEvery)
	}()

	log.Println("[main] Auto-refresher started. Press Ctrl+C to stop.")

	<-ctx.Done()
	log.Println("[main] Shutdown signal received, stopping tasks...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("[main] All tasks stopped cleanly")
	case <-shutdownCtx.Done():
		log.Println("[main] Shutdown timeout exceeded, forcing exit")
	}

	log.Println("[main] Auto-refresher stopped")
}

// runRefresher re-fetches every configured (symbol, interval) pair on a
// fixed cadence, bypassing the cache so the warmed entries carry fresh
// data for the next page load.
func runRefresher(ctx context.Context, fetcher *market.Fetcher, symbols, intervals []string, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	// Warm once immediately on startup
	refreshAll(ctx, fetcher, symbols, intervals)

	for {
		select {
		case <-ctx.Done():
			log.Println("[refresh] Stopping refresher")
			return
		case <-ticker.C:
			refreshAll(ctx, fetcher, symbols, intervals)
		}
	}
}

func refreshAll(parentCtx context.Context, fetcher *market.Fetcher, symbols, intervals []string) {
	if parentCtx.Err() != nil {
		return
	}

	for _, symbol := range symbols {
		for _, raw := range intervals {
			interval, err := market.ParseInterval(raw)
			if err != nil {
				log.Printf("[refresh] [ERROR] %v", err)
				continue
			}

			func() {
				ctx, cancel := context.WithTimeout(parentCtx, fetchTimeout)
				defer cancel()

				start := time.Now()
				result := fetcher.FetchFresh(ctx, symbol, interval)
				elapsed := time.Since(start)

				log.Printf("[refresh] [OK] %s/%s source=%s live=%t candles=%d, took %dms",
					symbol, interval, result.Source, result.Live, len(result.Series), elapsed.Milliseconds())
			}()
		}
	}
}
