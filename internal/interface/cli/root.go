package cli

import (
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/yanqian/sunsafe/internal/infra/config"
	"github.com/yanqian/sunsafe/pkg/apiclient"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	logger  *slog.Logger
	now     func() time.Time
	baseURL string
	timeout time.Duration
	client  *apiclient.Client
}

// NewRootCommand builds the sunctl command tree.
func NewRootCommand(logger *slog.Logger) *cobra.Command {
	a := &app{logger: logger, now: time.Now}

	root := &cobra.Command{
		Use:   "sunctl",
		Short: "Query a sunsafe API deployment",
		Long: `Query a sunsafe API deployment and print the JSON result.

The API base URL comes from --base-url or SUNSAFE_API_BASE_URL (a .env file is
honoured). Commands fail with a configuration error when neither is set.

Examples:
  sunctl cancer --gender male --age-group 20-29
  sunctl uv --postcode 3000
  sunctl sunscreen --skin-type 2 --uv-index 7.5
  sunctl recommendation --tone fair --postcode 3000
  sunctl mock-uv --location Sydney`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "API base URL (overrides SUNSAFE_API_BASE_URL)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "Per-request timeout (overrides SUNSAFE_API_TIMEOUT)")

	root.AddCommand(
		a.cancerCmd(),
		a.uvCmd(),
		a.skinToneCmd(),
		a.clothingCmd(),
		a.sunscreenCmd(),
		a.recommendationCmd(),
		a.mockCancerCmd(),
		a.mockUVCmd(),
	)
	return root
}

// apiClient lazily builds the client so mock commands work without config.
func (a *app) apiClient() (*apiclient.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}
	if a.timeout > 0 {
		cfg.Timeout = a.timeout
	}
	a.client = apiclient.New(cfg.BaseURL,
		apiclient.WithLogger(a.logger),
		apiclient.WithTimeout(cfg.Timeout),
		apiclient.WithRetry(cfg.Retry.MaxAttempts, cfg.Retry.BaseBackoff),
	)
	return a.client, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
