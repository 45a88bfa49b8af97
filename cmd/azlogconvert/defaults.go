package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

const defaultTimeout = 5 * time.Minute

// opContext returns a context with the configured timeout for remote
// operations. The caller must call cancel when done.
func opContext() (context.Context, context.CancelFunc) {
	timeout := defaultTimeout

	if cfg != nil && cfg.Defaults.Timeout != "" {
		if d, err := time.ParseDuration(cfg.Defaults.Timeout); err == nil {
			timeout = d
		}
	}

	return context.WithTimeout(context.Background(), timeout)
}

// applyConfigDefaults sets flag values from config when the flag was not
// explicitly set on the command line: flags > env > config > built-ins.
// The config package already resolves env > config > built-ins.
func applyConfigDefaults(cmd *cobra.Command) {
	if cfg == nil {
		return
	}

	setDefault := func(name, value string) {
		if value != "" && !cmd.Flags().Changed(name) {
			if f := cmd.Flags().Lookup(name); f != nil {
				_ = f.Value.Set(value)
			}
		}
	}

	setDefault("zone", cfg.Convert.Zone)
	setDefault("suffix", cfg.Convert.Suffix)
}
