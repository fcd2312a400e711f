// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mdhender/xtab/xrdb"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	store "github.com/mdhender/xtab/stores/sqlite"
)

func cmdSnapshot() *cobra.Command {
	var dbPath string
	var resourcesFile, keymapFile string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "SQLite database file path")
		cmd.Flags().StringVar(&resourcesFile, "resources-file", resourcesFile, "parse a saved xrdb dump instead of invoking xrdb")
		cmd.Flags().StringVar(&keymapFile, "keymap-file", keymapFile, "parse a saved xmodmap dump instead of invoking xmodmap")
		return cmd.MarkFlagRequired("db")
	}
	var cmd = &cobra.Command{
		Use:          "snapshot",
		Short:        "capture the current tables into the snapshot store",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resources := xrdb.New()
			if resourcesFile != "" {
				if err := resources.ReadFile(afero.NewOsFs(), resourcesFile); err != nil {
					return err
				}
			} else if err := resources.Read(); err != nil {
				return err
			}

			keys, err := loadKeyTable(keymapFile)
			if err != nil {
				return err
			}

			s, err := store.NewStoreWithConfig(store.StoreConfig{Path: dbPath, InitSchema: true})
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := context.Background()
			takenAt := time.Now().UTC()
			resourceID, err := s.SaveResources(ctx, takenAt, resources.Entries())
			if err != nil {
				return err
			}
			keymapID, err := s.SaveKeymap(ctx, takenAt, keys.Records())
			if err != nil {
				return err
			}

			log.Printf("snapshot: resources %d (%d entries), keymap %d (%d keycodes)\n",
				resourceID, resources.Len(), keymapID, keys.Len())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdUser() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "user",
		Short: "manage query server users",
	}
	cmd.AddCommand(cmdUserAdd())
	return cmd
}

func cmdUserAdd() *cobra.Command {
	var dbPath, password string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "SQLite database file path")
		cmd.Flags().StringVar(&password, "password", password, "password for the new user")
		if err := cmd.MarkFlagRequired("db"); err != nil {
			return err
		}
		return cmd.MarkFlagRequired("password")
	}
	var cmd = &cobra.Command{
		Use:          "add <handle>",
		Short:        "add a user to the snapshot store",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.NewStoreWithConfig(store.StoreConfig{Path: dbPath, InitSchema: true})
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.CreateUser(context.Background(), args[0], password); err != nil {
				return err
			}
			fmt.Printf("user %q created\n", args[0])
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
