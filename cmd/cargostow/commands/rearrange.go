package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargostow/internal/project"
	"github.com/piwi3910/cargostow/internal/rearrangement"
)

var rearrangeCmd = &cobra.Command{
	Use:   "rearrange",
	Short: "Propose an eviction plan so new items fit into a saved job",
	Long: `Reads an items CSV of new cargo that didn't fit directly, and
proposes, against a deep copy of the named job's containers, a set of
evictions that would make room. The saved job's containers are never
mutated by this command.`,
	RunE: runRearrange,
}

func init() {
	rearrangeCmd.Flags().String("job", "", "saved job name (required)")
	rearrangeCmd.Flags().String("items", "", "path to the new items CSV (required)")
	_ = rearrangeCmd.MarkFlagRequired("job")
	_ = rearrangeCmd.MarkFlagRequired("items")
}

func runRearrange(cmd *cobra.Command, args []string) error {
	jobName, _ := cmd.Flags().GetString("job")
	itemsPath, _ := cmd.Flags().GetString("items")

	job, err := project.LoadJob(jobName)
	if err != nil {
		return err
	}
	newItems, err := loadItemsCSV(itemsPath)
	if err != nil {
		return err
	}

	result := rearrangement.Suggest(job.Containers, newItems)
	if !result.Success() {
		fmt.Fprintf(os.Stderr, "rearrangement left %d item(s) unresolved\n", len(result.Errors))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
