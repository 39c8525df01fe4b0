package query

import (
	"fmt"
	"time"

	"github.com/speakeasy-api/querystring/cmd/querystring/commands/cmdutil"
	"github.com/speakeasy-api/querystring/internal/config"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var (
		flags       documentFlags
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "encode [<file>...]",
		Short: "Render JSON or YAML documents as URL query strings",
		Long: `Render one or more JSON or YAML documents as URL query strings.

Each document is decoded into the DTO named by --type and serialized:
- without --prefix the output is in form style, e.g. Limit=10&Genres=News
- with --prefix the output is in deepObject style, e.g. filter[Limit]=10&filter[Genres][0]=News

Files are processed concurrently and one line is printed per file, in the order given.`,
		Example: `  # Encode a programs filter
  querystring encode --type GetProgramsDto programs.json

  # Encode under a parameter name
  querystring encode --type GetProgramsDto --prefix filter programs.yaml

  # Encode the first session of a server response
  querystring encode --type SessionInfoDto --select '$[0]' sessions.json

  # Pipe a document via stdin
  cat item.json | querystring encode --type BaseItemDto`,
		Args: cmdutil.StdinOrFileArgs(1, -1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *config.FromContext(cmd.Context())
			flags.apply(cmd.Flags(), &cfg)
			if cmd.Flags().Changed("concurrency") {
				cfg.Concurrency = concurrency
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runEncode(cmd, &cfg, cmdutil.InputFilesFromArgs(args))
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", config.Default().Concurrency, "Maximum number of files encoded at once (0 for no limit)")

	return cmd
}

func runEncode(cmd *cobra.Command, cfg *config.Config, files []string) error {
	start := time.Now()

	enc, err := newEncoder(cfg, files, cmd.InOrStdin())
	if err != nil {
		return err
	}

	results, err := enc.encodeFiles(cmd.Context(), files, cmd.InOrStdin())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintln(out, r.Query)
	}

	if verbose(cmd) {
		reportSummary(cmd.ErrOrStderr(), cfg, results, time.Since(start))
	}

	return nil
}

func verbose(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("verbose")
	return err == nil && v
}
