package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargostow/internal/logging"
	"github.com/piwi3910/cargostow/internal/project"
	"github.com/piwi3910/cargostow/internal/stowage"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Pack items into containers and print the resulting arrangement",
	Long: `Reads an items CSV and a containers CSV, packs every
item into the first container that accepts it (preferred zone first),
and prints the placed and unplaced item IDs as
JSON. Pass --job to persist the result for later search/rearrange/waste
commands.`,
	RunE: runPack,
}

func init() {
	packCmd.Flags().String("items", "", "path to the items CSV (required)")
	packCmd.Flags().String("containers", "", "path to the containers CSV (required)")
	packCmd.Flags().String("job", "", "save the packed job under this name")
	_ = packCmd.MarkFlagRequired("items")
	_ = packCmd.MarkFlagRequired("containers")
}

func runPack(cmd *cobra.Command, args []string) error {
	itemsPath, _ := cmd.Flags().GetString("items")
	containersPath, _ := cmd.Flags().GetString("containers")
	jobName, _ := cmd.Flags().GetString("job")

	job, err := buildJob(jobName, itemsPath, containersPath)
	if err != nil {
		return err
	}

	result := stowage.PackItems(job.Containers, job.Items)
	job.WithResult(result)

	if jobName != "" {
		if err := project.SaveJob(job); err != nil {
			return fmt.Errorf("saving job %q: %w", jobName, err)
		}
		if err := project.RecordRecentJob(project.DefaultConfigPath(), jobName); err != nil {
			return fmt.Errorf("recording recent job %q: %w", jobName, err)
		}
		logging.Info("job saved", "job", jobName, "path", project.JobPath(jobName))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"placed":   idsOf(result.Placed),
		"unplaced": idsOf(result.Unplaced),
	})
}

func idsOf(items []stowage.Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
