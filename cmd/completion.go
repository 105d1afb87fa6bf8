package cmd

import (
	"sort"
	"strconv"
	"strings"

	"github.com/juanibiapina/zombie/internal/process"
	"github.com/spf13/cobra"
)

// completeParentPIDs offers the PIDs that currently have zombie children
func completeParentPIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	entries, err := process.Defunct()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	counts := make(map[int]int)
	for _, e := range entries {
		counts[e.PPID]++
	}

	ppids := make([]int, 0, len(counts))
	for ppid := range counts {
		ppids = append(ppids, ppid)
	}
	sort.Ints(ppids)

	var completions []string
	for _, ppid := range ppids {
		id := strconv.Itoa(ppid)
		if strings.HasPrefix(id, toComplete) {
			// Format: ppid\tdescription (tab-separated for description)
			completions = append(completions, id+"\t"+strconv.Itoa(counts[ppid])+" defunct")
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
