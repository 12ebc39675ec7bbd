package main

import (
	"fmt"
	"io"
	"os"

	"github.com/heathj/minidom/blueprint"
	"github.com/heathj/minidom/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var cfg Config
	cmd := &cobra.Command{
		Use:   "minidom [file]",
		Short: "Build a document from a YAML blueprint and print it or query it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(&cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVarP(&cfg.Query, "query", "q", "", "print the first element matching this selector")
	cmd.Flags().BoolVarP(&cfg.All, "all", "a", false, "print every match of --query, one per line")
	cmd.Flags().BoolVar(&cfg.Debug, "debug", false, "log tree mutations")
	return cmd
}

func run(cfg *Config, stdin io.Reader, out io.Writer) error {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	dom.SetLogger(logger)
	defer dom.SetLogger(nil)

	in := stdin
	if !cfg.stdin() {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return errors.Wrap(err, "open blueprint")
		}
		defer f.Close()
		in = f
	}

	bp, err := blueprint.Decode(in)
	if err != nil {
		return err
	}
	doc, err := bp.Build()
	if err != nil {
		return errors.Wrap(err, "build blueprint")
	}
	logger.WithField("input", cfg.Input).Debug("document built")

	if cfg.Query == "" {
		_, err = fmt.Fprintln(out, doc.String())
		return err
	}

	var matches []*dom.Node
	if cfg.All {
		matches = doc.QuerySelectorAll(cfg.Query)
	} else if m := doc.QuerySelector(cfg.Query); m != nil {
		matches = append(matches, m)
	}
	logger.WithFields(logrus.Fields{"query": cfg.Query, "matches": len(matches)}).Debug("query done")
	for _, m := range matches {
		if _, err := fmt.Fprintln(out, m.String()); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
