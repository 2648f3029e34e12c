// Command tokengen issues bearer tokens for the study planner API. It reads
// the same configuration as the server and prints one signed token to
// stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/phrazzld/studyplan/internal/config"
	"github.com/phrazzld/studyplan/internal/service/auth"
)

// errAuthDisabled is returned when no JWT secret is configured.
var errAuthDisabled = errors.New("auth.jwt_secret is not set; API authentication is disabled")

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default: ./config.yaml when present)")
	subject := flag.String("subject", "cli", "subject recorded in the token")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: auth.token_lifetime_minutes)")
	flag.Parse()

	if err := run(context.Background(), os.Stdout, *configPath, *subject, *ttl); err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, configPath, subject string, ttl time.Duration) error {
	if subject == "" {
		return errors.New("subject cannot be empty")
	}
	if ttl < 0 {
		return fmt.Errorf("ttl must not be negative, got %s", ttl)
	}

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if !cfg.Auth.Enabled() {
		return errAuthDisabled
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	token, err := jwtService.GenerateToken(ctx, subject, ttl)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)
	return err
}
