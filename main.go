// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "0.1.0"

// errNotFound makes the process exit with status 1 without a message.
var errNotFound = errors.New("word not found")

const asciiLogo = `
███████╗██╗      ██████╗ ██╗   ██╗ █████╗ ██████╗
██╔════╝██║     ██╔═══██╗██║   ██║██╔══██╗██╔══██╗
███████╗██║     ██║   ██║██║   ██║███████║██████╔╝
╚════██║██║     ██║   ██║╚██╗ ██╔╝██╔══██║██╔══██╗
███████║███████╗╚██████╔╝ ╚████╔╝ ██║  ██║██║  ██║
╚══════╝╚══════╝ ╚═════╝   ╚═══╝  ╚═╝  ╚═╝╚═╝  ╚═╝
English to Russian pocket dictionary [Version: %s%s%s]

Copyright @ Naren Yellavula

`

func main() {
	InitializeColors()

	rootCmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, errNotFound) {
			os.Exit(1)
		}
		log.Fatalf("%sError:%s %v", Error, Reset, err)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	logo := fmt.Sprintf(asciiLogo, Green, version, Reset)

	var (
		dbURL   string
		verbose bool
	)

	// withSession loads the configured dictionary for the length of fn.
	withSession := func(cmd *cobra.Command, fn func(ctx context.Context, cfg *Config, s *session) error) error {
		cfg := LoadConfig()
		if dbURL != "" {
			cfg.Database.URL = dbURL
		}

		ctx := cmd.Context()
		s, err := openSession(ctx, cfg.Database.URL, newLogger(cmd.ErrOrStderr(), verbose))
		if err != nil {
			return err
		}
		defer s.Close()
		return fn(ctx, cfg, s)
	}

	browse := func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, cfg *Config, s *session) error {
			return runBrowse(s.dict, cfg.Browse)
		})
	}

	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Launches the dictionary browser",
		Long:  fmt.Sprintf("%s\n%s", logo, `Browse opens the search screen with the word of the day`),
		Args:  cobra.NoArgs,
		RunE:  browse,
	}

	var cmdAdd = &cobra.Command{
		Use:   "add WORD TRANSLATION",
		Short: "Add a word or update its translation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, _ *Config, s *session) error {
				if err := s.add(ctx, args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s%s = %s\n", Green, args[0], Reset, args[1])
				return nil
			})
		},
	}

	var cmdGet = &cobra.Command{
		Use:   "get WORD",
		Short: "Print the translation of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(_ context.Context, _ *Config, s *session) error {
				v, ok, err := s.dict.Find(args[0])
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s%s%s: not found\n", Warning, args[0], Reset)
					return errNotFound
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			})
		},
	}

	var cmdRemove = &cobra.Command{
		Use:     "rm WORD",
		Aliases: []string{"delete"},
		Short:   "Delete a word",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, _ *Config, s *session) error {
				deleted, err := s.remove(ctx, args[0])
				if err != nil {
					return err
				}
				if !deleted {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s%s%s: not found\n", Warning, args[0], Reset)
					return errNotFound
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s removed\n", args[0])
				return nil
			})
		},
	}

	var cmdList = &cobra.Command{
		Use:   "list",
		Short: "List words in alphabetical order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, _ := cmd.Flags().GetString("prefix")
			return withSession(cmd, func(_ context.Context, _ *Config, s *session) error {
				for _, p := range s.dict.SearchPrefix(prefix) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.Key, p.Value)
				}
				return nil
			})
		},
	}
	cmdList.Flags().String("prefix", "", "only list words starting with this prefix")

	var cmdStats = &cobra.Command{
		Use:   "stats",
		Short: "Print dictionary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(_ context.Context, _ *Config, s *session) error {
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "%sstore%s:  %s\n", Info, Reset, s.url)
				fmt.Fprintf(w, "%swords%s:  %d\n", Info, Reset, s.dict.Size())
				fmt.Fprintf(w, "%sheight%s: %d\n", Info, Reset, s.dict.Height())
				return nil
			})
		},
	}

	var cmdImport = &cobra.Command{
		Use:   "import FILE",
		Short: "Import words from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := readPairsFile(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, _ *Config, s *session) error {
				var progress io.Writer
				if f, ok := cmd.ErrOrStderr().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
					progress = f
				}
				if err := importPairs(ctx, s.dict, pairs, progress); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d words, dictionary has %d\n", len(pairs), s.dict.Size())
				return nil
			})
		},
	}

	var cmdExport = &cobra.Command{
		Use:   "export [FILE]",
		Short: "Export words to a YAML file (stdout when no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(_ context.Context, _ *Config, s *session) error {
				w := cmd.OutOrStdout()
				if len(args) == 1 {
					f, err := os.Create(args[0])
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}
				fmt.Fprintf(w, "# slovar export, %s\n", FormatDateTime(time.Now()))
				return writePairs(w, s.dict.Pairs())
			})
		},
	}

	var cmdTranslate = &cobra.Command{
		Use:   "translate [FILE]",
		Short: "Translate a text word by word (stdin when no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(_ context.Context, cfg *Config, s *session) error {
				r := cmd.InOrStdin()
				if len(args) == 1 {
					f, err := os.Open(args[0])
					if err != nil {
						return err
					}
					defer f.Close()
					r = f
				}

				stats, err := NewGlossary(s.dict, cfg.Translate).Translate(r, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%s%d of %d words translated%s\n", Info, stats.Translated, stats.Words, Reset)
				for _, u := range stats.Unknown {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s?%s %s\n", Warning, Reset, u)
				}
				return nil
			})
		},
	}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Interactive dictionary prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, _ *Config, s *session) error {
				prompt := false
				if f, ok := cmd.InOrStdin().(*os.File); ok {
					prompt = term.IsTerminal(int(f.Fd()))
				}
				return runShell(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
			})
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Slovar usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the slovar CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Slovar version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "slovar",
		Version:       version,
		Long:          logo,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Default to browse when no subcommand is provided
		RunE: browse,
	}
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "database url (sqlite://PATH, pebble://DIR, mem://)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.AddCommand(cmdBrowse, cmdAdd, cmdGet, cmdRemove, cmdList, cmdStats,
		cmdImport, cmdExport, cmdTranslate, cmdShell, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}
