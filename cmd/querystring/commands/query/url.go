package query

import (
	"fmt"
	"time"

	"github.com/speakeasy-api/querystring/cmd/querystring/commands/cmdutil"
	"github.com/speakeasy-api/querystring/errors"
	"github.com/speakeasy-api/querystring/internal/config"
	"github.com/speakeasy-api/querystring/querystring"
	"github.com/spf13/cobra"
)

const ErrMissingBaseURL = errors.Error("no base URL given, use --base or set baseURL in the config")

func newURLCmd() *cobra.Command {
	var (
		flags   documentFlags
		baseURL string
		path    string
	)

	cmd := &cobra.Command{
		Use:   "url [<file>]",
		Short: "Print the full request URL for a document",
		Long: `Render a JSON or YAML document as a query string and append it to a server URL.

The document is decoded and serialized as with 'querystring encode', then joined
with --base and --path. Nothing is printed after the '?' when the document has no fields set.`,
		Example: `  # Build a live TV programs request
  querystring url --type GetProgramsDto --base http://jellyfin.local:8096 --path /LiveTv/Programs programs.json`,
		Args: cmdutil.StdinOrFileArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *config.FromContext(cmd.Context())
			flags.apply(cmd.Flags(), &cfg)
			if cmd.Flags().Changed("base") {
				cfg.BaseURL = baseURL
			}
			if cmd.Flags().Changed("path") {
				cfg.Path = path
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runURL(cmd, &cfg, cmdutil.InputFileFromArgs(args))
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&baseURL, "base", "", "Server address, e.g. http://jellyfin.local:8096")
	cmd.Flags().StringVar(&path, "path", "", "Endpoint path, e.g. /LiveTv/Programs")

	return cmd
}

func runURL(cmd *cobra.Command, cfg *config.Config, file string) error {
	start := time.Now()

	if cfg.BaseURL == "" {
		return ErrMissingBaseURL
	}

	enc, err := newEncoder(cfg, []string{file}, cmd.InOrStdin())
	if err != nil {
		return err
	}

	results, err := enc.encodeFiles(cmd.Context(), []string{file}, cmd.InOrStdin())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), querystring.BuildURL(cfg.BaseURL, cfg.Path, nil, results[0].Query))

	if verbose(cmd) {
		reportSummary(cmd.ErrOrStderr(), cfg, results, time.Since(start))
	}

	return nil
}
