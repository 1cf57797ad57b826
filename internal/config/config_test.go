package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestDefaultsValidate(t *testing.T) {
	if err := NewOptions().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
		want   string
	}{
		{"empty listen", func(o *Options) { o.ListenAddr = "" }, "listen address"},
		{"bad level", func(o *Options) { o.LogLevel = "loud" }, "log level"},
		{"bad format", func(o *Options) { o.Format = "xml" }, "export format"},
	}
	for _, tc := range cases {
		o := NewOptions()
		tc.mutate(o)
		err := o.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestBindFlags(t *testing.T) {
	o := NewOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	names := o.BindFlags(fs)
	if len(names) == 0 {
		t.Fatalf("no flags bound")
	}
	if err := fs.Parse([]string{"--log-level=debug"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if o.LogLevel != "debug" {
		t.Fatalf("log level not bound, got %q", o.LogLevel)
	}
}

func TestResolveOutputPath(t *testing.T) {
	now := time.Date(2025, time.June, 1, 9, 30, 0, 0, time.UTC)
	o := NewOptions()
	if got := o.ResolveOutputPath(now); got != "iedash-report-20250601-093000.html" {
		t.Fatalf("unexpected default path %q", got)
	}
	o.OutputPath = "out/report.html"
	if got := o.ResolveOutputPath(now); got != "out/report.html" {
		t.Fatalf("explicit path not honored, got %q", got)
	}
}
