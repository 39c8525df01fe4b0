// Package query implements the querystring commands that render documents as query strings.
package query

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/speakeasy-api/querystring/internal/config"
	"github.com/spf13/cobra"
)

func Apply(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newURLCmd())
	rootCmd.AddCommand(newTypesCmd())
}

// LoadConfig reads the config file at path and stores it in the command's context.
// An empty path leaves the defaults in place.
func LoadConfig(cmd *cobra.Command, path string) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := config.Load(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	cmd.SetContext(config.ContextWithConfig(cmd.Context(), cfg))
	return nil
}
