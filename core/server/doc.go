// Package server provides an HTTP server with graceful shutdown, configurable
// timeouts, and optional TLS. It wraps the standard http.Server with lifecycle
// management suitable for long-running services.
//
// # Basic Usage
//
// Create and run a server with default configuration:
//
//	import (
//		"context"
//		"net/http"
//
//		"github.com/dmitrymomot/greetmail/core/server"
//	)
//
//	func main() {
//		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//			w.Write([]byte("Hello, World!"))
//		})
//
//		ctx := context.Background()
//		if err := server.Run(ctx, ":8080", handler); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Configuration
//
// Load configuration from environment variables:
//
//	var cfg server.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	srv, err := server.NewFromConfig(cfg,
//		server.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Graceful Shutdown
//
// Start blocks until the context is canceled; Stop drains in-flight requests
// within the configured shutdown timeout:
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	go func() {
//		<-ctx.Done()
//		srv.Stop()
//	}()
//
//	if err := srv.Start(ctx, handler); err != nil && !errors.Is(err, context.Canceled) {
//		log.Fatal(err)
//	}
//
// For errgroup-based lifecycles, use the Run method which wires start and stop
// to a single context:
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//
// # Defaults
//
//   - ReadTimeout: 15 seconds
//   - WriteTimeout: 15 seconds
//   - IdleTimeout: 60 seconds
//   - MaxHeaderBytes: 1MB
//   - Shutdown timeout: 30 seconds
//
// The Server type is safe for concurrent use.
package server
