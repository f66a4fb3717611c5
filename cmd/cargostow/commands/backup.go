package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargostow/internal/logging"
	"github.com/piwi3910/cargostow/internal/project"
)

// backupCmd groups the backup subcommands: export and import.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or restore the app config and every saved job",
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the config and all saved jobs to a single backup file",
	RunE:  runBackupExport,
}

var backupImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Restore the config and saved jobs from a backup file",
	RunE:  runBackupImport,
}

func init() {
	backupCmd.AddCommand(backupExportCmd, backupImportCmd)

	backupExportCmd.Flags().String("out", "", "path to write the backup file (required)")
	_ = backupExportCmd.MarkFlagRequired("out")
	backupImportCmd.Flags().String("in", "", "path of the backup file to restore (required)")
	_ = backupImportCmd.MarkFlagRequired("in")
}

func runBackupExport(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("loading app config: %w", err)
	}
	if err := project.ExportAllData(out, cfg); err != nil {
		return err
	}
	logging.Info("backup written", "path", out)
	return nil
}

func runBackupImport(cmd *cobra.Command, args []string) error {
	in, _ := cmd.Flags().GetString("in")

	backup, err := project.ImportAllData(in, project.DefaultConfigPath())
	if err != nil {
		return err
	}
	logging.Info("backup restored", "jobs", len(backup.Jobs), "created_at", backup.CreatedAt)
	return nil
}
