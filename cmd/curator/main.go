package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/athathhq/curator/internal/profile"
	"github.com/athathhq/curator/plugin/curation"
	apiv1 "github.com/athathhq/curator/server/router/api/v1"
)

var version = "0.3.2"

func main() {
	rootCmd := &cobra.Command{
		Use:   "curator",
		Short: "Package recommendation engine for the Athath furnishing marketplace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
	rootCmd.AddCommand(newRecommendCommand())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	p := profile.FromEnv(version)
	if err := p.Validate(); err != nil {
		return err
	}

	cfg := curation.NewConfigFromProfile(p)
	if err := cfg.Validate(); err != nil {
		return err
	}
	service := curation.NewService(cfg)

	e := echo.New()
	e.HideBanner = true
	apiv1.NewAPIV1Service(p, service).Register(e)

	addr := fmt.Sprintf("%s:%d", p.Addr, p.Port)
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("curator started",
		"version", version,
		"addr", addr,
		"mode", p.Mode,
		"ai_configured", service.IsConfigured())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("curator stopped")
	return nil
}

// newRecommendCommand runs one recommendation from a JSON request file
// (or stdin) and prints the result. Useful for retailers tuning their
// catalogs and for smoke-testing AI connectivity.
func newRecommendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend [file]",
		Short: "Generate a single package recommendation from a JSON request",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args)
			if err != nil {
				return err
			}

			var input curation.PackageRecommendationInput
			if err := json.Unmarshal(raw, &input); err != nil {
				return fmt.Errorf("parse request: %w", err)
			}

			p := profile.FromEnv(version)
			if err := p.Validate(); err != nil {
				return err
			}
			service := curation.NewService(curation.NewConfigFromProfile(p))

			output := service.GeneratePackageRecommendation(cmd.Context(), input)
			encoded, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
