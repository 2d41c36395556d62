// Command dirctl is the admin console for a founderhub API: it lists and
// moderates founders and startups, runs CSV imports and prints the events
// calendar and dashboard.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"founderhub/internal/client"
)

const tokenEnv = "FOUNDERHUB_TOKEN"

// cli carries the global flags and the objects built from them.
type cli struct {
	apiURL  string
	token   string
	output  string
	verbose bool
	timeout time.Duration

	out    io.Writer
	log    *zap.Logger
	client *client.Client
	store  *client.Store
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &cli{out: out}

	root := &cobra.Command{
		Use:   "dirctl",
		Short: "Admin console for the founder directory",
		Long: `dirctl talks to a founderhub API with an admin bearer token.

The token is read from --token or the FOUNDERHUB_TOKEN environment variable.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			cfg.OutputPaths = []string{"stderr"}
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			} else {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			}
			log, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.log = log

			if _, err := newPrinter(a.out, a.output); err != nil {
				return err
			}
			if a.token == "" {
				a.token = os.Getenv(tokenEnv)
			}
			c, err := client.New(a.apiURL, a.token)
			if err != nil {
				return err
			}
			a.client = c
			a.store = client.NewStore(c)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.apiURL, "api", "http://localhost:8080", "API base URL")
	root.PersistentFlags().StringVar(&a.token, "token", "", "bearer token (default $"+tokenEnv+")")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "table", "output format: table, json or yaml")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 30*time.Second, "overall deadline for the command")

	root.AddCommand(
		a.resourceCmd(client.Founders),
		a.resourceCmd(client.Startups),
		a.importCmd(),
		a.calendarCmd(),
		a.dashboardCmd(),
	)
	return root
}

// context returns a context bounded by --timeout and cancelled on the parent's cancellation.
func (a *cli) context(parent context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, a.timeout)
}

func (a *cli) printer() *printer {
	p, _ := newPrinter(a.out, a.output)
	return p
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
