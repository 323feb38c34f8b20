// Package cmd holds the lens command: a terminal client for the Flight Lens proxy.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"flightlens/internal/lens"
	"flightlens/pkg/logger"

	"github.com/spf13/cobra"
)

var errLookupFailed = errors.New("lookup failed")

type options struct {
	apiURL  string
	text    bool
	timeout time.Duration
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := options{}

	root := &cobra.Command{
		Use:   "lens <flight-number>",
		Short: "Look up AI-generated flight and aircraft details",
		Long: `lens asks a Flight Lens proxy for plausible (not real-time, not guaranteed
accurate) details about a flight and prints them.

The flight number is uppercased and stripped of whitespace before lookup.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args, stdout, stderr)
		},
	}

	defaultAPI := os.Getenv("LENS_API_BASE_URL")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:8080"
	}

	root.Flags().StringVar(&opts.apiURL, "api", defaultAPI, "base URL of the Flight Lens proxy")
	root.Flags().BoolVar(&opts.text, "text", false, "request a free-text summary instead of JSON fields")
	root.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "HTTP timeout for the proxy call")
	root.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	return root
}

func run(ctx context.Context, opts options, args []string, stdout, stderr io.Writer) error {
	var log logger.Logger = logger.NewNop()
	if opts.verbose {
		log = logger.NewWithWriter("development", stderr)
	}

	client := lens.NewClient(&http.Client{Timeout: opts.timeout}, opts.apiURL, log)

	session := lens.NewSession()
	if err := session.Input(strings.Join(args, "")); err != nil {
		return err
	}

	var err error
	if opts.text {
		err = session.RunText(ctx, client)
	} else {
		err = session.Run(ctx, client)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	view := session.Snapshot()
	fmt.Fprint(stdout, lens.RenderTerminal(view))
	if view.Phase == lens.Error {
		return errLookupFailed
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd(os.Stdout, os.Stderr).Execute()
}
