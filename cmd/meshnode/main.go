// Command meshnode runs a single mesh node instance.
//
// The node restores its network info from the settings store, optionally
// brings up the IP interface and the mesh protocol, and offers an
// interactive shell for lifecycle control and scanning.
//
// Usage:
//
//	meshnode [flags]
//
// Flags:
//
//	-config string         Configuration file path (YAML)
//	-state-dir string      Directory for persistent settings (default ".")
//	-settings string       Settings backend: memory, file, sqlite (default "file")
//	-log-level string      Log level: debug, info, warn, error (default "info")
//	-trace string          Write a CBOR event trace to this file
//	-auto-start            Bring up the interface and protocol at start
//	-interactive           Run the interactive shell (default true)
//	-interface string      Network interface for mDNS scans
//	-scan-duration dur     Active scan duration (default 3s)
//	-reset-mode string     Platform reset: simulate or reexec (default "simulate")
//
// Examples:
//
//	# Start with SQLite settings and a trace for meshnode-log
//	meshnode -settings sqlite -state-dir /var/lib/meshnode -trace node.mnlog
//
//	# Headless node that starts the protocol on boot
//	meshnode -interactive=false -auto-start
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/meshnode/meshnode-go/cmd/meshnode/interactive"
	"github.com/meshnode/meshnode-go/pkg/instance"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "meshnode: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseConfig(args, os.Stderr)
	if err != nil {
		return err
	}

	var term *readline.Instance
	var logOut io.Writer = os.Stderr
	if cfg.Interactive {
		term, err = interactive.NewTerminal()
		if err != nil {
			return err
		}
		defer term.Close()
		logOut = term.Stdout()
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	n, err := newNode(cfg, logger)
	if err != nil {
		return err
	}
	defer n.Stop()

	if err := n.Start(); err != nil {
		return fmt.Errorf("start instance: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("received signal", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	if !cfg.Interactive {
		<-ctx.Done()
		return nil
	}

	shell := interactive.New(term, interactive.Config{
		Instance:     n.Instance,
		Lock:         n,
		Interface:    cfg.Interface,
		ScanDuration: cfg.ScanDuration,
		Logger:       logger,
	})
	n.onReboot = func(inst *instance.Instance) { shell.Reattach(inst) }

	shell.Run(ctx, cancel)
	return nil
}
