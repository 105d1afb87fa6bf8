package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/juanibiapina/zombie/internal/process"
	"github.com/spf13/cobra"
)

var (
	defunctPPID int
	defunctJSON bool
)

var defunctCmd = &cobra.Command{
	Use:   "defunct",
	Short: "List zombie processes",
	Long: `List zombie (defunct) processes in the process table.

Each line shows the state, parent PID, PID and command name, the same columns as
  ps axo stat,ppid,pid,comm | grep -w defunct

Use --ppid to only show zombies attributed to one parent, for example the PID
of a running 'zombie' invocation.

Exit codes:
  0: Success (including when no zombies are found)
  1: Error reading the process table`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if defunctPPID < 0 {
			return fmt.Errorf("invalid --ppid %d: must be a positive PID", defunctPPID)
		}

		var (
			entries []process.Entry
			err     error
		)
		if defunctPPID > 0 {
			entries, err = process.DefunctChildren(defunctPPID)
		} else {
			entries, err = process.Defunct()
		}
		if err != nil {
			return fmt.Errorf("failed to read process table: %w", err)
		}

		out := cmd.OutOrStdout()

		if defunctJSON {
			if entries == nil {
				entries = []process.Entry{}
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		if len(entries) == 0 {
			fmt.Fprintln(out, "No defunct processes found")
			return nil
		}

		// Print in format: <stat> <ppid> <pid> <comm> <defunct>
		for _, e := range entries {
			fmt.Fprintf(out, "%s %d %d %s <defunct>\n", e.Stat(), e.PPID, e.PID, e.Name)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(defunctCmd)
	defunctCmd.Flags().IntVar(&defunctPPID, "ppid", 0, "Only show zombies whose parent is this PID")
	defunctCmd.Flags().BoolVar(&defunctJSON, "json", false, "Output in JSON format")
	defunctCmd.RegisterFlagCompletionFunc("ppid", completeParentPIDs)
}
