package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"outbound-dialer/internal/campaign"
	"outbound-dialer/internal/config"
	"outbound-dialer/internal/vapi"
	"outbound-dialer/pkg/logger"

	"github.com/spf13/cobra"
)

func runBatch(cmd *cobra.Command, args []string) error {
	log := logger.New(verbose)
	slog.SetDefault(log)
	ctx := logger.With(cmd.Context(), log)

	path := csvFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return errors.New("a CSV file path is required (positional argument or --csv-file)")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Batch.MaxConcurrency = concurrency
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	client := vapi.NewClient(cfg.API)
	if skipCredentialCheck {
		log.Warn("credential check skipped")
	} else {
		if err := client.VerifyCredentials(ctx); err != nil {
			return fmt.Errorf("checking credentials: %w", err)
		}
		log.Info("api key validated")
	}

	requests, headers, err := campaign.ReadRequests(path)
	if err != nil {
		return err
	}
	log.Debug("csv headers detected", "headers", headers)
	if len(requests) == 0 {
		return fmt.Errorf("no rows found in %s", path)
	}
	log.Info("rows loaded", "rows", len(requests), "file", path)

	dispatcher := campaign.NewDispatcher(campaign.Config{MaxConcurrency: cfg.Batch.MaxConcurrency})
	result, err := dispatcher.Dispatch(ctx, requests, client)

	// On interruption the result is still complete (undispatched units are
	// recorded as failures), so the summary is printed either way and the
	// interruption error drives the nonzero exit.
	campaign.WriteSummary(os.Stdout, len(requests), result)
	return err
}
