// Package root wires the FitQuest CLI commands together.
package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest/internal/ui"
)

const Version = "0.1.0"

var flags struct {
	apiURL  string
	feedURL string
	dbPath  string
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:           "fitquest",
	Short:         "FitQuest — workout quests, EXP and levels from the terminal",
	Long:          "FitQuest is the command-line client for the FitQuest fitness platform: log in, work through quest workouts, collect EXP, and browse the activity feed.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "base URL of the FitQuest API (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flags.feedURL, "feed-url", "", "base URL of the feed service (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "path of the local client database (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newQuestsCmd(),
		newTodayCmd(),
		newWorkoutsCmd(),
		newDoCmd(),
		newCompleteCmd(),
		newFeedCmd(),
		newMapCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Fail.Sprint("✗ "+err.Error()))
		os.Exit(1)
	}
}
