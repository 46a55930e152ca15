// Package cli implements the passcheck command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jwalitptl/passcheck/internal/config"
	passwordService "github.com/jwalitptl/passcheck/internal/service/password"
	"github.com/jwalitptl/passcheck/pkg/logger"
	"github.com/jwalitptl/passcheck/pkg/metrics"
	"github.com/jwalitptl/passcheck/pkg/security"
)

// ErrRejected is returned when at least one checked password is not valid.
var ErrRejected = errors.New("password rejected by policy")

// IO bundles the streams and terminal hooks the commands use.
type IO struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// IsTerminal reports whether In is an interactive terminal.
	IsTerminal func() bool
	// ReadPassword reads one line from the terminal without echo.
	ReadPassword func() ([]byte, error)
}

// StdIO wires the commands to the process streams.
func StdIO() IO {
	return IO{
		In:           os.Stdin,
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		IsTerminal:   stdinIsTerminal,
		ReadPassword: readTerminalPassword,
	}
}

type app struct {
	io       IO
	viper    *viper.Viper
	registry *prometheus.Registry
	log      *logger.Logger
	service  *passwordService.Service
}

// NewRootCmd builds the passcheck command tree.
func NewRootCmd(streams IO) *cobra.Command {
	a := &app{io: streams, viper: config.NewViper()}

	root := &cobra.Command{
		Use:           "passcheck",
		Short:         "Checks passwords against the account password policy",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.ErrOut)

	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")
	_ = a.viper.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))
	_ = a.viper.BindPFlag("log.json", root.PersistentFlags().Lookup("log-json"))

	root.AddCommand(a.newCheckCmd(), a.newHashCmd())
	return root
}

func (a *app) setup() error {
	cfg, err := config.LoadConfig(a.viper)
	if err != nil {
		return err
	}

	a.log = logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     a.io.ErrOut,
		JSON:       cfg.Log.JSON,
	})

	a.registry = prometheus.NewRegistry()
	m, err := metrics.NewMetrics(a.registry, cfg.Metrics.Namespace, cfg.Metrics.Subsystem)
	if err != nil {
		return err
	}

	a.service = passwordService.NewService(security.NewBcryptHasher(cfg.Bcrypt.Cost), m, a.log)
	a.log.Debug("configuration loaded", "config_file", a.viper.ConfigFileUsed())
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute(streams IO, args []string) int {
	root := NewRootCmd(streams)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, ErrRejected) {
			fmt.Fprintf(streams.ErrOut, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
