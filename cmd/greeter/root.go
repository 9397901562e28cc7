package main

import (
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/janisto/huma-greeter/internal/config"
	"github.com/janisto/huma-greeter/internal/service/greeting"
)

const envFile = ".env"

// options are resolved once per invocation: environment first, then flags
// that were set explicitly.
type options struct {
	apiAddr string
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "greeter",
		Short: "Greeting consumer",
		Long: `greeter fetches the greeting from a running huma-greeter service.
The API address and fetch timeout come from GREETER_API_ADDR and
GREETER_TIMEOUT (or a .env file) unless overridden by flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadClient(envFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("api-addr") {
				opts.apiAddr = cfg.APIAddr
			}
			if !cmd.Flags().Changed("timeout") {
				opts.timeout = cfg.Timeout
			}
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.apiAddr, "api-addr", greeting.DefaultBaseURL, "Address of the greeting service")
	f.DurationVar(&opts.timeout, "timeout", greeting.DefaultTimeout, "Fetch timeout (0 disables)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log requests to stderr")

	cmd.AddCommand(newUICmd(&opts), newFetchCmd(&opts))
	return cmd
}

func (o *options) client() (*greeting.Client, error) {
	return greeting.NewClient(&http.Client{}, greeting.WithBaseURL(o.apiAddr), greeting.WithTimeout(o.timeout))
}

// stderrLogger writes console-encoded entries; warnings only unless verbose.
func (o *options) stderrLogger(w io.Writer) *zap.Logger {
	lvl := zapcore.WarnLevel
	if o.verbose {
		lvl = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), lvl))
}
