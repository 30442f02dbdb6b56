package client

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the passgen options. Environment variables are read first
// and command-line flags override them.
type Config struct {
	Policy string `env:"POLICY" envDefault:"strong"`
	Length int    `env:"LENGTH"`
	Count  int    `env:"COUNT"`

	// Copy puts the first password on the clipboard.
	Copy bool `env:"COPY"`

	ListPolicies bool
	ShowVersion  bool

	// Server switches to remote mode when set.
	Server       string        `env:"SERVER"`
	UserID       int64         `env:"USER_ID"`
	TokenSignKey string        `env:"TOKEN_SIGN_KEY"`
	TokenIssuer  string        `env:"TOKEN_ISSUER" envDefault:"go-pass-bot"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"10s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

// ParseConfig reads PASSGEN_* variables from environ, or from the process
// environment when environ is nil, and then applies args.
func ParseConfig(args []string, environ map[string]string) (Config, error) {
	var cfg Config

	opts := env.Options{Prefix: "PASSGEN_"}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("passgen", flag.ContinueOnError)
	fs.StringVar(&cfg.Policy, "p", cfg.Policy, "policy: simple, medium or strong")
	fs.StringVar(&cfg.Policy, "policy", cfg.Policy, "policy: simple, medium or strong")
	fs.IntVar(&cfg.Length, "l", cfg.Length, "password length, 0 for the policy default")
	fs.IntVar(&cfg.Length, "length", cfg.Length, "password length, 0 for the policy default")
	fs.IntVar(&cfg.Count, "n", cfg.Count, "number of passwords, 0 for the default")
	fs.BoolVar(&cfg.Copy, "copy", cfg.Copy, "copy the first password to the clipboard")
	fs.BoolVar(&cfg.ListPolicies, "policies", false, "list policies and exit")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print build information and exit")
	fs.StringVar(&cfg.Server, "server", cfg.Server, "credential service address; generate locally when empty")
	fs.Int64Var(&cfg.UserID, "user", cfg.UserID, "chat user id to act as in remote mode")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
