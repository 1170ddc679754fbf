package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// @title animal-sounds API
// @version 1.0
// @description Gatos y perros en una sola tabla (discriminador AnimalType).
// @BasePath /
func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:          "animal-sounds",
		Short:        "API de sonidos de gatos y perros",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "YAML config file")
	cmd.Flags().IntVarP(&flags.port, "port", "p", 0, "HTTP port (overrides PORT)")
	cmd.Flags().StringVar(&flags.db, "db", "", "Api1Db connection string (postgres://..., sqlite:path); empty = in-memory")
	cmd.Flags().BoolVar(&flags.autoSchema, "auto-schema", true, "create the Animal table if it does not exist")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "trace|debug|info|warn|error")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "", "text|json")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "also write logs to this rotated file")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "animal-sounds %s (commit: %s)\n", version, commit)
		},
	})
	cmd.AddCommand(newClientCmd())

	return cmd
}
