package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	csvFile             string
	concurrency         int
	skipCredentialCheck bool
	verbose             bool
)

var rootCmd = &cobra.Command{
	Use:   "dialer [csv-file]",
	Short: "Initiate a batch of outbound voice-AI calls from a CSV file",
	Long: `dialer reads phone numbers and per-call template variables from a CSV
file and initiates one outbound call per row through the Vapi.ai API,
bounding simultaneous call initiations and reporting per-call outcomes.

The CSV must contain a 'phone_number' column (E.164 format). Every other
column is passed through verbatim as a template variable.

Credentials come from VAPI_API_KEY, VAPI_PHONE_NUMBER_ID and
VAPI_WORKFLOW_ID (environment or a .env file).

Examples:
  # Call every number in the file, at most 10 at a time
  dialer numbers.csv

  # Raise the concurrency ceiling for this run
  dialer numbers.csv --concurrency 25

  # Skip the upfront credential check
  dialer numbers.csv --skip-credential-check`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runBatch,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&csvFile, "csv-file", "", "path to the input CSV file (alternative to the positional argument)")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 0, "max simultaneous call initiations (overrides MAX_CONCURRENT_CALLS)")
	rootCmd.Flags().BoolVar(&skipCredentialCheck, "skip-credential-check", false, "do not verify the API key before dispatching")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command. A non-nil error means the process should
// exit nonzero; partial call failures inside a completed batch do not
// surface here.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
