// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/mdhender/xtab/xmodmap"
	"github.com/mdhender/xtab/xrdb"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func cmdQuery() *cobra.Command {
	var fromFile string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&fromFile, "from-file", fromFile, "parse a saved xrdb dump instead of invoking xrdb")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "query <component> <property>",
		Short:        "look up a resource value",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")

			resources := xrdb.New()
			if fromFile != "" {
				if err := resources.ReadFile(afero.NewOsFs(), fromFile); err != nil {
					return err
				}
			} else if err := resources.Read(); err != nil {
				return err
			}
			if verbose {
				log.Printf("parsed %d resources\n", resources.Len())
			}

			value, ok := resources.Query(args[0], args[1])
			if !ok {
				return fmt.Errorf("%s.%s: not found", args[0], args[1])
			}
			fmt.Println(value)
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdKeys() *cobra.Command {
	var fromFile string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&fromFile, "from-file", fromFile, "parse a saved xmodmap dump instead of invoking xmodmap")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "keys <keysym>",
		Short:        "look up the key owning a keysym",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sym, ok := xmodmap.KeySymFromName(args[0])
			if !ok {
				return fmt.Errorf("%s: unknown keysym name", args[0])
			}

			keys, err := loadKeyTable(fromFile)
			if err != nil {
				return err
			}

			rec, ok := keys.GetKey(sym)
			if !ok {
				return fmt.Errorf("%s: not bound in current layout", args[0])
			}
			fmt.Printf("keycode %3d = %s\n", rec.Code, joinSyms(rec.Syms))
			if len(rec.Modifiers) > 0 {
				fmt.Printf("modifiers: %s\n", joinModifiers(rec.Modifiers))
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdModifiers() *cobra.Command {
	var fromFile string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&fromFile, "from-file", fromFile, "parse a saved xmodmap dump instead of invoking xmodmap")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "modifiers [name]",
		Short:        "list keycodes bound to modifier classes",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := loadKeyTable(fromFile)
			if err != nil {
				return err
			}

			mods := xmodmap.Modifiers
			if len(args) == 1 {
				mod, ok := xmodmap.ModifierFromName(args[0])
				if !ok {
					return fmt.Errorf("%s: unknown modifier name", args[0])
				}
				mods = []xmodmap.Modifier{mod}
			}
			for _, mod := range mods {
				var codes []string
				for _, code := range keys.GetModifier(mod) {
					codes = append(codes, fmt.Sprintf("%d", code))
				}
				fmt.Printf("%-8s %s\n", mod, strings.Join(codes, " "))
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func loadKeyTable(fromFile string) (*xmodmap.KeyTable, error) {
	if fromFile != "" {
		return xmodmap.NewFromFile(afero.NewOsFs(), fromFile)
	}
	return xmodmap.New()
}

func joinSyms(syms []xmodmap.KeySym) string {
	names := make([]string, 0, len(syms))
	for _, sym := range syms {
		names = append(names, sym.String())
	}
	return strings.Join(names, " ")
}

func joinModifiers(mods []xmodmap.Modifier) string {
	names := make([]string, 0, len(mods))
	for _, mod := range mods {
		names = append(names, mod.String())
	}
	return strings.Join(names, " ")
}
