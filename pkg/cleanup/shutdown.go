// Closes open connections and the HTTP server before shutting down Callboard.
// Inspired from https://medium.com/tokopedia-engineering/gracefully-shutdown-your-go-application-9e7d5c73b5ac

package cleanup

import (
	"Callboard/pkg/log"
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Operation is a clean up function standard.
type Operation func(ctx context.Context) error

// Called when timeout elapses before every operation returned. Replaced in tests.
var forceExit = func() { os.Exit(3) }

// GracefulShutdown waits for termination system-calls and then performs the clean-up operations.
// The returned channel is closed once every operation has returned.
func GracefulShutdown(ctx context.Context, logger log.Logger, timeout time.Duration, operations map[string]Operation) <-chan struct{} {
	// buffered channel to receive shutdown signal
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	wait := make(chan struct{})
	go func() {
		sig := <-s
		signal.Stop(s)
		logger.Warn().Str("signal", sig.String()).Msg("Graceful shutdown in progress.")
		Run(ctx, logger, timeout, operations)
		close(wait)
	}()
	return wait
}

// Run executes every operation concurrently, forcing the process out after timeout.
// A failing operation is logged, the others still run.
func Run(ctx context.Context, logger log.Logger, timeout time.Duration, operations map[string]Operation) {
	// Force exit after timeout duration has been elapsed
	force := time.AfterFunc(timeout, func() {
		logger.Warn().Dur("timeout", timeout).Msg("Timeout has been elapsed. Forcing shutdown!")
		forceExit()
	})
	defer force.Stop()

	opctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var wg sync.WaitGroup
	for opname, op := range operations {
		wg.Add(1)
		go func(opname string, op Operation) {
			defer wg.Done()
			logger.Info().Msgf("Shutting down: %s", opname)
			if operr := op(opctx); operr != nil {
				logger.Error().Err(operr).Msgf("%s shutdown failed.", opname)
				return
			}
			logger.Info().Msgf("%s shutdown completed.", opname)
		}(opname, op)
	}
	// Wait for all of the tasks to finish
	wg.Wait()
}
