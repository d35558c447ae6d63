package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cutroom/roughcut/internal/domain"
)

var addAssetsCmd = &cobra.Command{
	Use:   "add-assets <timeline-id> <assets.json>",
	Short: "Register assets against a timeline from a JSON file",
	Long:  "Reads a JSON array of assets ({id, metadata}) and registers them against the timeline in file order.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[1])
		if err != nil {
			exitErr("read assets file", err)
		}

		var assets []domain.Asset
		if err := json.Unmarshal(data, &assets); err != nil {
			exitErr("parse assets file", err)
		}

		c, err := openCatalog()
		if err != nil {
			exitErr("open catalog", err)
		}
		defer c.Close()

		if err := c.PutAssets(cmd.Context(), args[0], assets); err != nil {
			exitErr("register assets", err)
		}
		fmt.Printf("registered %d assets against %s\n", len(assets), args[0])
	},
}

var assetsCmd = &cobra.Command{
	Use:   "assets <timeline-id>",
	Short: "List the assets registered against a timeline",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := openCatalog()
		if err != nil {
			exitErr("open catalog", err)
		}
		defer c.Close()

		assets, err := c.ListAssets(cmd.Context(), args[0])
		if err != nil {
			exitErr("list assets", err)
		}
		printJSON(assets)
	},
}

func init() {
	RootCmd.AddCommand(addAssetsCmd)
	RootCmd.AddCommand(assetsCmd)
}
