package cmd

import (
	"os"

	"github.com/juanibiapina/zombie/internal/version"
	"github.com/juanibiapina/zombie/internal/zombie"
	"github.com/spf13/cobra"
)

var logFile string

// window is how long the root command lingers. Tests shorten it.
var window = zombie.DefaultWindow

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "zombie",
	Short: "Leave a defunct process behind for 60 seconds",
	Long: `Start one child process that exits immediately and sleep for 60 seconds
without reaping it. The child shows up as a zombie (defunct) entry attributed to
this process for the whole window, which is useful for checking that process
monitoring tools report zombies correctly.

Check for the zombie from another terminal:
  ps axo stat,ppid,pid,comm | grep -w defunct
  zombie defunct`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return zombie.InitLogger(logFile)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return zombie.CloseLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := zombie.New()
		if err != nil {
			return err
		}
		g.Window = window
		return g.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Set version for --version flag
	RootCmd.Version = version.Version

	// Don't show usage on errors - only show it when explicitly requested
	RootCmd.SilenceUsage = true

	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write debug logs to this file")
	RootCmd.PersistentFlags().MarkHidden("log-file")
}
