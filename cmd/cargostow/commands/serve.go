package commands

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargostow/internal/httpapi"
	"github.com/piwi3910/cargostow/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP façade for pack/search/rearrange/waste operations",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	router := httpapi.NewRouter()
	logging.Info("starting cargostow HTTP façade", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}
