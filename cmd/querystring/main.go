package main

import (
	"context"
	"runtime/debug"
	"strings"

	"github.com/speakeasy-api/querystring/cmd/querystring/commands/cmdutil"
	queryCmd "github.com/speakeasy-api/querystring/cmd/querystring/commands/query"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// getVersionInfo returns version information, prioritizing ldflags values over build info
func getVersionInfo() (string, string, string) {
	if version != "dev" || commit != "none" || date != "unknown" {
		return version, commit, date
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, date
	}

	moduleVersion := version
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		moduleVersion = buildInfo.Main.Version
	}

	vcsCommit := commit
	vcsTime := date

	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsCommit = setting.Value[:min(7, len(setting.Value))]
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	return moduleVersion, vcsCommit, vcsTime
}

var configFlag string

var rootCmd = &cobra.Command{
	Use:   "querystring",
	Short: "Render Jellyfin DTOs as URL query strings",
	Long: `Render JSON or YAML documents holding Jellyfin DTOs as URL query strings.

Top level objects are written in form style (name=value&name=value). Objects
given a parameter name are written in deepObject style (name[field]=value),
with nested objects, sequences and mappings expanded into bracketed keys.

Settings can be kept in a YAML file passed with --config. Flags given on the
command line override the file.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return queryCmd.LoadConfig(cmd, configFlag)
	},
}

func init() {
	currentVersion, currentCommit, currentDate := getVersionInfo()

	rootCmd.Version = currentVersion

	var versionTemplate strings.Builder
	versionTemplate.WriteString(`{{printf "%s" .Version}}`)

	if currentCommit != "none" && currentCommit != "" {
		versionTemplate.WriteString("\nBuild: " + currentCommit)
	}

	if currentDate != "unknown" && currentDate != "" {
		versionTemplate.WriteString("\nBuilt: " + currentDate)
	}

	rootCmd.SetVersionTemplate(versionTemplate.String())

	queryCmd.Apply(rootCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "YAML config file")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		cmdutil.Die(err)
	}
}
