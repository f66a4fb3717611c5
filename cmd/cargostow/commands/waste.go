package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargostow/internal/project"
	"github.com/piwi3910/cargostow/internal/waste"
)

// wasteCmd groups the waste-management subcommands: identify,
// return-plan, and undock.
var wasteCmd = &cobra.Command{
	Use:   "waste",
	Short: "Identify expired or depleted cargo and plan its return",
}

var wasteIdentifyCmd = &cobra.Command{
	Use:   "identify",
	Short: "List every placement that is expired or out of uses",
	RunE:  runWasteIdentify,
}

var wasteReturnPlanCmd = &cobra.Command{
	Use:   "return-plan",
	Short: "Build a weight-bounded return manifest for undocking",
	RunE:  runWasteReturnPlan,
}

var wasteUndockCmd = &cobra.Command{
	Use:   "undock",
	Short: "Remove every expired or depleted placement and save the job",
	RunE:  runWasteUndock,
}

func init() {
	wasteCmd.AddCommand(wasteIdentifyCmd, wasteReturnPlanCmd, wasteUndockCmd)

	for _, c := range []*cobra.Command{wasteIdentifyCmd, wasteReturnPlanCmd, wasteUndockCmd} {
		c.Flags().String("job", "", "saved job name (required)")
		_ = c.MarkFlagRequired("job")
	}
	wasteReturnPlanCmd.Flags().String("undocking-container", "", "undocking container ID (required)")
	wasteReturnPlanCmd.Flags().Float64("max-weight", 0, "maximum total mass (kg) the return manifest may carry")
	_ = wasteReturnPlanCmd.MarkFlagRequired("undocking-container")
}

func encodeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runWasteIdentify(cmd *cobra.Command, args []string) error {
	jobName, _ := cmd.Flags().GetString("job")
	job, err := project.LoadJob(jobName)
	if err != nil {
		return err
	}
	return encodeJSON(waste.IdentifyWaste(job.Containers, time.Now()))
}

func runWasteReturnPlan(cmd *cobra.Command, args []string) error {
	jobName, _ := cmd.Flags().GetString("job")
	undockingID, _ := cmd.Flags().GetString("undocking-container")
	maxWeight, _ := cmd.Flags().GetFloat64("max-weight")

	job, err := project.LoadJob(jobName)
	if err != nil {
		return err
	}
	return encodeJSON(waste.WasteReturnPlan(job.Containers, undockingID, time.Now(), maxWeight))
}

func runWasteUndock(cmd *cobra.Command, args []string) error {
	jobName, _ := cmd.Flags().GetString("job")
	job, err := project.LoadJob(jobName)
	if err != nil {
		return err
	}

	removed := waste.CompleteUndocking(job.Containers, time.Now())
	if err := project.SaveJob(job); err != nil {
		return fmt.Errorf("undocking completed but job could not be saved: %w", err)
	}
	return encodeJSON(map[string]int{"items_removed": removed})
}
