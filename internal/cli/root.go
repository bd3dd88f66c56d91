package cli

import (
	"airport-distance-service/internal/adapters/airports"
	"airport-distance-service/internal/config"
	"airport-distance-service/internal/ports"
	"airport-distance-service/internal/services"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Dependencies are supplied by main; tests replace them freely.
type Dependencies struct {
	Config     config.Config
	HTTPClient *http.Client
	Version    string
}

type options struct {
	format  string
	apiKey  string
	baseURL string
	fixture string
	timeout time.Duration
}

// NewRootCommand builds the airport-distance command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "airport-distance CODE1 CODE2",
		Short:         "Print the great-circle distance in kilometers between two airports.",
		Example:       "  airport-distance LHR JFK\n  airport-distance --format json AMS CDG",
		Args:          cobra.ExactArgs(2),
		Version:       resolvedVersion(deps.Version),
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistance(cmd, deps, opts, args[0], args[1])
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.format, "format", "text", "Output format: text or json.")
	flags.StringVar(&opts.apiKey, "api-key", deps.Config.APIKey, "Airport lookup API key (default from AIRPORTS_API_KEY).")
	flags.StringVar(&opts.baseURL, "base-url", deps.Config.BaseURL, "Airport lookup API root.")
	flags.StringVar(&opts.fixture, "fixture", "", "Resolve codes from a local JSON file instead of the lookup API.")
	flags.DurationVar(&opts.timeout, "timeout", deps.Config.LookupTimeout, "Timeout for each airport lookup.")

	return root
}

// Execute runs the command and returns the process exit code.
func Execute(ctx context.Context, args []string, deps Dependencies, stdout, stderr io.Writer) int {
	root := NewRootCommand(deps)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func runDistance(cmd *cobra.Command, deps Dependencies, opts *options, code1, code2 string) error {
	format := strings.ToLower(strings.TrimSpace(opts.format))
	if format != "text" && format != "json" {
		return fmt.Errorf("unsupported format %q (want text or json)", opts.format)
	}

	resolver, err := buildResolver(deps, opts)
	if err != nil {
		return err
	}

	svc, err := services.NewDistanceService(resolver)
	if err != nil {
		return err
	}

	km, err := svc.GetDistance(cmd.Context(), code1, code2)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	from, to := strings.ToUpper(strings.TrimSpace(code1)), strings.ToUpper(strings.TrimSpace(code2))
	if format == "json" {
		enc := json.NewEncoder(out)
		return enc.Encode(map[string]any{"from": from, "to": to, "distance_km": km})
	}
	_, err = fmt.Fprintf(out, "%s -> %s: %.2f km\n", from, to, km)
	return err
}

func buildResolver(deps Dependencies, opts *options) (ports.AirportResolver, error) {
	if opts.fixture != "" {
		return airports.LoadStaticResolver(opts.fixture)
	}

	if strings.TrimSpace(opts.apiKey) == "" {
		return nil, errors.New("an API key is required: set AIRPORTS_API_KEY or pass --api-key (or use --fixture)")
	}

	resolverOpts := []airports.Option{airports.WithTimeout(opts.timeout)}
	if opts.baseURL != "" {
		resolverOpts = append(resolverOpts, airports.WithBaseURL(opts.baseURL))
	}
	if deps.HTTPClient != nil {
		resolverOpts = append(resolverOpts, airports.WithHTTPClient(deps.HTTPClient))
	}

	return airports.NewNinjasResolver(opts.apiKey, resolverOpts...)
}

func resolvedVersion(v string) string {
	if strings.TrimSpace(v) == "" {
		return "dev"
	}
	return v
}
