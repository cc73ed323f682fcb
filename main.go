package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fishbits/wa-leg-mcp/cliparse"
	"github.com/fishbits/wa-leg-mcp/router"
	"github.com/fishbits/wa-leg-mcp/wslclient"
)

func main() {
	// Load .env if present (ignore absence)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Stdout belongs to the stdio transport; all logs go to stderr
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// Create upstream client
	client := wslclient.New(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)

	// Create MCP server
	s := router.NewServer(client)

	switch cfg.Transport {
	case cliparse.TransportSSE:
		sse := server.NewSSEServer(s)

		// signal.Notify requires the channel to be buffered
		ctrlc := make(chan os.Signal, 1)
		signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
		go func() {
			// Wait for Ctrl-C signal
			<-ctrlc
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			sse.Shutdown(ctx)
		}()

		slog.Info("Listening", "transport", "sse", "port", cfg.Port)
		if err := sse.Start(":" + strconv.Itoa(cfg.Port)); err != nil {
			slog.Error("Server closed", "error", err)
		}
	default:
		slog.Info("Serving", "transport", "stdio")
		if err := server.ServeStdio(s); err != nil {
			slog.Error("Server closed", "error", err)
		}
	}
}
