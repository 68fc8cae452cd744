// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"fmt"
	"os"

	"github.com/go-logr/logr/funcr"
	"github.com/mattn/go-isatty"

	"github.com/imamik/tgprov/internal/config"
	"github.com/imamik/tgprov/internal/platform/twingate"
	"github.com/imamik/tgprov/internal/provisioning"
)

// Log formats accepted by --log-format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads and validates the configuration.
	loadConfigFile = config.Load

	// newAPIClient creates the access-control API client.
	newAPIClient = func(cfg *config.Config, debugLog func(string)) twingate.API {
		opts := []twingate.ClientOption{twingate.WithTimeouts(cfg.Timeouts)}
		if debugLog != nil {
			opts = append(opts, twingate.WithDebugLog(debugLog))
		}
		return twingate.NewRealClient(cfg.APIURL, cfg.APIKey, opts...)
	}

	// isTTY reports whether output should be styled.
	isTTY = isInteractiveTTY
)

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// newObserver returns the observer for a --log-format value.
// Both formats write to stderr so stdout carries only results.
func newObserver(format string) (provisioning.Observer, error) {
	switch format {
	case "", LogFormatText:
		return provisioning.NewWriterObserver(os.Stderr), nil
	case LogFormatJSON:
		logger := funcr.NewJSON(func(obj string) {
			fmt.Fprintln(os.Stderr, obj)
		}, funcr.Options{LogTimestamp: true})
		return provisioning.NewLogrObserver(logger), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want %s or %s)", format, LogFormatText, LogFormatJSON)
	}
}

// debugLogger forwards raw API traffic to the observer when enabled.
func debugLogger(enabled bool, observer provisioning.Observer) func(string) {
	if !enabled {
		return nil
	}
	return func(s string) {
		observer.Printf("[debug] %s", s)
	}
}
