package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zerfoo/ortmeta/internal/config"
	"github.com/zerfoo/ortmeta/internal/logging"
	"github.com/zerfoo/ortmeta/pkg/inspector"
	"github.com/zerfoo/ortmeta/pkg/session"
)

var errNoModel = errors.New("a model path is required")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type cli struct {
	stdout, stderr io.Writer

	configPath  string
	backend     string
	libraryPath string
	format      string
	logLevel    string
	logFormat   string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "ortmeta",
		Short:         "Print the declared inputs and outputs of an ONNX model",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&c.backend, "backend", "", fmt.Sprintf("session backend (%v)", session.Backends()))
	flags.StringVar(&c.libraryPath, "ort-lib", "", "path to the onnxruntime shared library")
	flags.StringVar(&c.format, "format", "", "output format: text, json or yaml")
	flags.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&c.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		&cobra.Command{
			Use:   "report [model.onnx]",
			Short: "List the model's inputs and outputs",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.execute(cmd, args, inspector.Report)
			},
		},
		&cobra.Command{
			Use:   "inspect [model.onnx]",
			Short: "Print model metadata, inputs, outputs and overridable initializers",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.execute(cmd, args, inspector.Inspect)
			},
		},
	)
	return root
}

type reportFunc func(ctx context.Context, w io.Writer, path string, opts inspector.Options) error

func (c *cli) execute(cmd *cobra.Command, args []string, report reportFunc) error {
	cfg, err := config.Load(c.configPath, c.overrides(cmd))
	if err != nil {
		return err
	}
	logger, err := logging.New(c.stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	path := cfg.Model
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("%w: pass it as an argument or set model in the config", errNoModel)
	}

	log := logger.WithFields(logrus.Fields{"command": cmd.Name(), "path": path, "backend": cfg.Backend.Name})
	log.Debug("starting")

	err = report(cmd.Context(), c.stdout, path, inspector.Options{
		Session: session.Options{
			Backend:     cfg.Backend.Name,
			LibraryPath: cfg.Backend.LibraryPath,
			Logger:      logger,
		},
		Format: cfg.Report.Format,
		Logger: logger,
	})
	if err != nil {
		log.WithError(err).Debug("failed")
		return err
	}
	log.Debug("done")
	return nil
}

// overrides returns the config keys set explicitly on the command line.
func (c *cli) overrides(cmd *cobra.Command) map[string]interface{} {
	flagKeys := []struct {
		flag  string
		key   string
		value string
	}{
		{"backend", "backend.name", c.backend},
		{"ort-lib", "backend.library_path", c.libraryPath},
		{"format", "report.format", c.format},
		{"log-level", "log.level", c.logLevel},
		{"log-format", "log.format", c.logFormat},
	}
	out := make(map[string]interface{})
	for _, fk := range flagKeys {
		if cmd.Flags().Changed(fk.flag) {
			out[fk.key] = fk.value
		}
	}
	return out
}
