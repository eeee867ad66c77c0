package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jongio/duckurl/browser"
	"github.com/jongio/duckurl/cliout"
	"github.com/jongio/duckurl/config"
	"github.com/jongio/duckurl/duckapi"
	"github.com/jongio/duckurl/httpclient"
	"github.com/jongio/duckurl/logutil"
	"github.com/jongio/duckurl/mcpserver"
	"github.com/jongio/duckurl/metrics"
	"github.com/jongio/duckurl/notify"
	"github.com/jongio/duckurl/version"
)

const appName = "duckurl"

// app carries the state shared by the commands of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	info    *version.Info
	cfg     config.Config
	printer *cliout.Printer
	log     *logutil.ComponentLogger

	// Hooks for the optional side effects after a successful run.
	openURL  func(ctx context.Context, url string) error
	notifier notify.Notifier
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		info:   version.New(appName),
		cfg:    config.Default(),
		openURL: func(ctx context.Context, url string) error {
			return browser.Launch(ctx, browser.LaunchOptions{URL: url})
		},
		notifier: notify.New(notify.DefaultConfig()),
	}
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return newApp(stdin, stdout, stderr).execute(ctx, args)
}

func (a *app) execute(ctx context.Context, args []string) int {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	kind := duckapi.KindOf(err)
	a.reportPrinter().ErrorReport(err, string(kind))
	return kind.ExitCode()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Print the URL of a random duck image",
		Long: `duckurl asks the random-d.uk API for a random duck and prints the image URL
on stdout. Failures are reported on stderr with a non-zero exit status.`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runOnce,
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(a.mcpCommand())
	root.AddCommand(version.NewCommand(a.info, &a.cfg.Output))
	return root
}

// setup resolves configuration and logging for any command.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	format, err := cliout.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	a.printer = cliout.NewPrinter(format, a.stdout, a.stderr)

	logutil.SetupLoggerWithWriter(a.stderr, cfg.Level(), cfg.LogFormat == config.LogFormatJSON)

	log, runID := logutil.NewLogger("cli").WithRunID()
	logutil.SetFields("run_id", runID)
	a.log = log.WithOperation(cmd.Name())
	if logutil.IsDebugEnabled() {
		a.log.Debug("configuration loaded",
			"endpoint", cfg.Endpoint,
			"timeout", cfg.Timeout,
			"output", cfg.Output,
			"log_level", logutil.GetLevel().String(),
		)
	}
	return nil
}

func (a *app) newClient() *httpclient.Client {
	return httpclient.NewClient(a.cfg.Timeout).WithUserAgent(a.info.UserAgent())
}

// runOnce fetches one duck URL and prints it.
func (a *app) runOnce(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	recorder := metrics.NewRecorder()
	defer a.writeMetrics(recorder)

	u, err := duckapi.RandomDuckURL(ctx, recorder.InstrumentDoer(a.newClient()), a.cfg.Endpoint)
	recorder.RecordOutcome(err)
	if err != nil {
		return err
	}

	if err := a.printer.PrintURL(u); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if a.cfg.Open {
		if err := a.openURL(ctx, u.String()); err != nil {
			a.log.Warn("could not open browser", "error", err)
		}
	}
	if a.cfg.Notify {
		if err := a.notifier.Send(ctx, notify.DuckNotification(u.String())); err != nil {
			a.log.Warn("could not send notification", "error", err)
		}
	}
	return nil
}

func (a *app) mcpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the random_duck_url tool over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recorder := metrics.NewRecorder()
			defer a.writeMetrics(recorder)

			srv := mcpserver.New(a.newClient(), a.cfg.Endpoint, recorder)
			a.log.Debug("serving mcp on stdio", "tool", mcpserver.ToolRandomDuckURL)
			return srv.Serve(cmd.Context(), a.info.Version, cmd.InOrStdin(), a.stdout)
		},
	}
}

// writeMetrics writes the metrics file when one is configured. Failures
// are logged and do not change the exit status.
func (a *app) writeMetrics(recorder *metrics.Recorder) {
	if a.cfg.MetricsFile == "" {
		return
	}
	if err := recorder.WriteFile(a.cfg.MetricsFile); err != nil {
		a.log.Warn("could not write metrics", "path", a.cfg.MetricsFile, "error", err)
	}
}

// reportPrinter returns the configured printer, or a default one when the
// failure happened before configuration was resolved.
func (a *app) reportPrinter() *cliout.Printer {
	if a.printer != nil {
		return a.printer
	}
	return cliout.NewPrinter(cliout.FormatDefault, a.stdout, a.stderr)
}
