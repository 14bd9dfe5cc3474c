package main

import (
	"errors"
	"fmt"
	"os"

	"hospbook/internal/catalog"
	"hospbook/internal/session"
	"hospbook/internal/storage"
	"hospbook/libs/config"
	"hospbook/libs/runtime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := runtime.NewLogger("hospbook", cfg.LogLevel)

	ctx, stop := runtime.SignalContext()
	defer stop()

	store, err := storage.Open(cfg.DataFile)
	if err != nil {
		if errors.Is(err, storage.ErrMalformedState) {
			logger.Error("booking file is unreadable, refusing to start with an empty history",
				"path", cfg.DataFile, "err", err)
		} else {
			logger.Error("booking store open failed", "path", cfg.DataFile, "err", err)
		}
		os.Exit(1)
	}

	flow := session.New(catalog.New(), store, logger, os.Stdin, os.Stdout)
	if err := flow.Run(ctx); err != nil {
		logger.Error("session aborted", "err", err)
		os.Exit(1)
	}
}
