// Package main provides the mechconf binary: validate and dump chemical
// mechanism configurations.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/mechconf"
	"github.com/reoring/mechconf/i18n"
	"github.com/reoring/mechconf/legacy"
	"github.com/reoring/mechconf/universal"
)

const (
	Version = "0.1.0"
	appName = "mechconf"
)

// errInvalid marks a document that parsed with issues. The issues have
// already been printed.
var errInvalid = errors.New("configuration has issues")

func main() {
	if err := rootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

type globalFlags struct {
	logLevel string
	lang     string
}

func rootCmd(stdout, stderr io.Writer) *cobra.Command {
	var g globalFlags
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Validate and inspect chemical mechanism configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			i18n.SetLanguage(g.lang)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&g.lang, "lang", "en", "Language of status descriptions ("+strings.Join(i18n.Languages(), ", ")+")")

	cmd.AddCommand(validateCmd(&g), dumpCmd(&g), schemaCmd(), &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})
	return cmd
}

func newLogger(w io.Writer, level string) *slog.Logger {
	lv := slog.LevelWarn
	switch level {
	case "debug":
		lv = slog.LevelDebug
	case "info":
		lv = slog.LevelInfo
	case "error":
		lv = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv}))
}

// outcome is the format-independent result of one parse.
type outcome struct {
	mechanism *mechconf.Mechanism
	issues    mechconf.Issues
}

// load reads path with the legacy reader when forced, otherwise with the
// layout detected from the input.
func load(cmd *cobra.Command, g *globalFlags, path string, useLegacy, failFast bool) (outcome, error) {
	log := newLogger(cmd.ErrOrStderr(), g.logLevel)
	var out outcome
	var err error
	if useLegacy {
		var res legacy.Result
		res, err = legacy.Parse(path, legacy.Options{Logger: log})
		out = outcome{mechanism: res.Mechanism, issues: res.Errors}
	} else {
		var res universal.Result
		res, err = universal.Parse(path, universal.Options{FailFast: failFast, Logger: log})
		out = outcome{mechanism: res.Mechanism, issues: res.Errors}
	}
	var ute *legacy.UnknownTypeError
	if errors.As(err, &ute) {
		return outcome{}, fmt.Errorf("%s: %s", ute.File, i18n.T("unknown_object_type", map[string]string{"type": ute.Type}))
	}
	return out, err
}

func validateCmd(g *globalFlags) *cobra.Command {
	var useLegacy, failFast bool
	cmd := &cobra.Command{
		Use:   "validate PATH",
		Short: "Report every issue found in a configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := load(cmd, g, args[0], useLegacy, failFast)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, it := range out.issues {
				fmt.Fprintln(w, formatIssue(it))
			}
			if len(out.issues) > 0 {
				fmt.Fprintf(w, "%d issue(s)\n", len(out.issues))
				return errInvalid
			}
			fmt.Fprintf(w, "%s: %s\n", args[0], i18n.T(string(mechconf.Success), nil))
			return nil
		},
	}
	cmd.Flags().BoolVar(&useLegacy, "legacy", false, "Force the version 0 (CAMP) multi-file layout instead of detecting it")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop after the first stage that reports issues")
	return cmd
}

func formatIssue(it mechconf.Issue) string {
	loc := ""
	if it.Line > 0 {
		loc = fmt.Sprintf(" %d:%d", it.Line, it.Column)
	}
	return fmt.Sprintf("%s %s%s %s (%s)", it.Status, it.Path, loc, it.Message, i18n.T(string(it.Status), nil))
}

func dumpCmd(g *globalFlags) *cobra.Command {
	var useLegacy bool
	cmd := &cobra.Command{
		Use:   "dump PATH",
		Short: "Print the parsed mechanism as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := load(cmd, g, args[0], useLegacy, false)
			if err != nil {
				return err
			}
			if out.mechanism == nil {
				for _, it := range out.issues {
					fmt.Fprintln(cmd.ErrOrStderr(), formatIssue(it))
				}
				return errInvalid
			}
			b, err := j.MarshalIndent(out.mechanism, "", "  ")
			if err != nil {
				return fmt.Errorf("encode mechanism: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			for _, it := range out.issues {
				fmt.Fprintln(cmd.ErrOrStderr(), formatIssue(it))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&useLegacy, "legacy", false, "Force the version 0 (CAMP) multi-file layout instead of detecting it")
	return cmd
}

func schemaCmd() *cobra.Command {
	var reaction string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of version 1 documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mechconf.JSONSchema()
			if reaction != "" {
				var ok bool
				if s, ok = mechconf.ReactionJSONSchema(mechconf.ReactionType(reaction)); !ok {
					return fmt.Errorf("unknown reaction type %q", reaction)
				}
			}
			b, err := j.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("encode schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().StringVar(&reaction, "reaction", "", "Print only the schema of one reaction type")
	return cmd
}
