package main

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bikeshare/config"
	"bikeshare/console"
	"bikeshare/loader"
	"bikeshare/registry"
	"bikeshare/session"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string, output io.Writer) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(output)
	log.SetLevel(level)
	return nil
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		dataDir    string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:   "bikeshare",
		Short: "Explore US bikeshare trip data",
		Long: `Interactive explorer for the Chicago, New York City and Washington bikeshare datasets.

Asks for a city and optional month and day filters, then prints the most frequent
times of travel, the most popular stations, trip durations and user stats.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			explorerConfig, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if dataDir != "" {
				explorerConfig.DataDir = dataDir
			}
			if logLevel != "" {
				explorerConfig.LogLevel = logLevel
			}

			if err := InitLogger(explorerConfig.LogLevel, cmd.ErrOrStderr()); err != nil {
				return err
			}

			datasetRegistry := registry.New(explorerConfig.DataDir)
			tripLoader := loader.NewLoader(datasetRegistry, explorerConfig)
			prompter := console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), explorerConfig.AffirmativeAnswers)

			log.Debugf("[caller: main] exploring datasets of %s in %s", strings.Join(datasetRegistry.Cities(), ", "), datasetRegistry.GetDataDir())
			return session.NewSession(explorerConfig, prompter, tripLoader, cmd.OutOrStdout()).Run()
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML config file")
	rootCmd.Flags().StringVarP(&dataDir, "data-dir", "d", "", "directory that holds the city datasets")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")
	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
