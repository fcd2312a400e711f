// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mdhender/xtab/web/auth"
	"github.com/mdhender/xtab/web/handlers"
	"github.com/mdhender/xtab/xrdb"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	store "github.com/mdhender/xtab/stores/sqlite"
)

func cmdServe() *cobra.Command {
	var addr, dbPath string
	var resourcesFile, keymapFile string
	var timeout time.Duration
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&addr, "addr", ":8787", "HTTP listen address")
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "SQLite database file path (empty = in-memory)")
		cmd.Flags().StringVar(&resourcesFile, "resources-file", resourcesFile, "parse a saved xrdb dump instead of invoking xrdb")
		cmd.Flags().StringVar(&keymapFile, "keymap-file", keymapFile, "parse a saved xmodmap dump instead of invoking xmodmap")
		cmd.Flags().DurationVar(&timeout, "timeout", timeout, "auto-shutdown after duration (e.g., 5s, 1m)")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "serve",
		Short:        "serve resource and keymap queries over HTTP",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(addr, dbPath, resourcesFile, keymapFile, timeout)
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func serve(addr, dbPath, resourcesFile, keymapFile string, timeout time.Duration) error {
	resources := xrdb.New()
	if resourcesFile != "" {
		if err := resources.ReadFile(afero.NewOsFs(), resourcesFile); err != nil {
			return fmt.Errorf("resources: %w", err)
		}
	} else if err := resources.Read(); err != nil {
		return fmt.Errorf("resources: %w", err)
	}
	keys, err := loadKeyTable(keymapFile)
	if err != nil {
		return fmt.Errorf("keymap: %w", err)
	}
	log.Printf("serve: %d resources, %d keycodes", resources.Len(), keys.Len())

	var s *store.Store
	if dbPath != "" {
		log.Printf("store: using file-based SQLite: %s", dbPath)
		s, err = store.NewStoreWithConfig(store.StoreConfig{Path: dbPath})
	} else {
		log.Printf("store: using in-memory SQLite")
		s, err = store.NewStore()
	}
	if err != nil {
		return fmt.Errorf("failed to create SQLite store: %v", err)
	}
	defer s.Close()

	stats := s.Stats()
	log.Printf("store: %d snapshots, %d resources, %d keycodes, %d users",
		stats.Snapshots, stats.Resources, stats.Keycodes, stats.Users)

	sessions := auth.NewSessionStore()
	h := handlers.New(resources, keys, s, sessions)

	mux := http.NewServeMux()
	mux.HandleFunc("/login", h.Login)
	mux.HandleFunc("/logout", h.Logout)
	mux.HandleFunc("/api/resource", h.RequireAuth(h.Resource))
	mux.HandleFunc("/api/resources", h.RequireAuth(h.Resources))
	mux.HandleFunc("/api/keys/{sym}", h.RequireAuth(h.Key))
	mux.HandleFunc("/api/modifiers/{name}", h.RequireAuth(h.Modifier))
	mux.HandleFunc("/api/refresh", h.RequireAuth(h.Refresh))
	mux.HandleFunc("/api/snapshots", h.RequireAuth(h.Snapshots))
	mux.HandleFunc("/api/snapshots/capture", h.RequireAuth(h.SnapshotCapture))

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	if timeout > 0 {
		go func() {
			log.Printf("server: will auto-shutdown in %v", timeout)
			time.Sleep(timeout)
			log.Printf("server: timeout reached, initiating shutdown")
			shutdown <- os.Interrupt
		}()
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("server: listening on %s", addr)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-shutdown:
		log.Printf("server: received %v, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	log.Printf("server: stopped")
	return nil
}
