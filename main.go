// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/GastonAllende/flashylearny/internal/cmd"
	"github.com/GastonAllende/flashylearny/internal/config"
	"github.com/GastonAllende/flashylearny/internal/study"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "flashylearny: failed to load config: %v\n", err)
		os.Exit(1)
	}

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "flashylearny: cannot create data directory %s: %v\n", dir, err)
			os.Exit(1)
		}
	}

	store, err := study.Open(cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flashylearny: cannot open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Cards created before progress tracking existed get a fresh NEW
	// progress row on startup.
	if _, err := store.EnsureProgress(); err != nil {
		fmt.Fprintf(os.Stderr, "flashylearny: progress backfill failed: %v\n", err)
		os.Exit(1)
	}

	root := cmd.NewRootCmd(cfg, store)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
