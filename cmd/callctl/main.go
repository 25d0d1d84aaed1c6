package main

import (
	"call-lab/infrastructure/provider"
	"call-lab/internal"
	"fmt"
	"os"

	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

var (
	envFile string
	app     *internal.App
	rootCmd = &cobra.Command{
		Use:   "callctl",
		Short: "Developer CLI for the calling core: history, search, live watch and test calls",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			config, err := internal.LoadConfig(files...)
			if err != nil {
				return err
			}
			providerConfig, err := provider.LoadConfig()
			if err != nil {
				return fmt.Errorf("provider config error: %w", err)
			}
			app, err = internal.NewApp(config, providerConfig, logs.GetLoggerFromString(config.LogLevel))
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env", "e", "", ".env file to load (defaults to ./.env when present)")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
