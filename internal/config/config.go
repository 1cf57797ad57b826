// File: internal/config/config.go
// Brief: Internal config package implementation for 'config'.

// Package config defines the flag plumbing and runtime options shared by the
// dashboard commands, translating Cobra/Viper flag values into a strongly
// typed struct that the serve, render, and export paths consume.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Options holds all CLI configuration used by the dashboard commands.
type Options struct {
	ListenAddr string
	OutputPath string
	Format     string
	LogLevel   string
}

const defaultListenAddr = ":8080"

var exportFormats = map[string]bool{
	"json": true,
	"yaml": true,
	"csv":  true,
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// NewOptions returns Options with defaults applied.
func NewOptions() *Options {
	return &Options{
		ListenAddr: defaultListenAddr,
		Format:     "json",
		LogLevel:   "info",
	}
}

// AddFlags binds configuration flags to the provided Cobra command.
func (o *Options) AddFlags(cmd *cobra.Command) {
	o.BindFlags(cmd.PersistentFlags())
}

// BindFlags attaches shared flags to an arbitrary FlagSet and returns the
// flag names for further customization.
func (o *Options) BindFlags(fs *pflag.FlagSet) []string {
	var names []string
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log verbosity: debug, info, warn, or error")
	names = append(names, "log-level")
	return names
}

// Validate checks option values that flag parsing cannot.
func (o *Options) Validate() error {
	if o.ListenAddr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if !logLevels[o.LogLevel] {
		return fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", o.LogLevel)
	}
	if !exportFormats[o.Format] {
		return fmt.Errorf("unknown export format %q (expected json, yaml, or csv)", o.Format)
	}
	return nil
}

// ResolveOutputPath returns the configured output path, or a timestamped
// default when none was given.
func (o *Options) ResolveOutputPath(now time.Time) string {
	if o.OutputPath != "" {
		return o.OutputPath
	}
	return fmt.Sprintf("iedash-report-%s.html", now.Format("20060102-150405"))
}
