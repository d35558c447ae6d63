package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cutroom/roughcut/internal/edl"
	"github.com/cutroom/roughcut/internal/export"
	"github.com/cutroom/roughcut/internal/storage"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <timeline-id>",
	Short: "Export a timeline as an EDL file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		timeline, err := s.Load(cmd.Context(), args[0])
		if err != nil {
			exitErr("load timeline", err)
		}

		local, err := storage.NewLocalStorage(outputDir)
		if err != nil {
			exitErr("open output directory", err)
		}

		result, err := export.New(local).Export(cmd.Context(), timeline, edl.Format(exportFormat))
		if err != nil {
			exitErr("export", err)
		}
		fmt.Printf("wrote %s\n", result.Location)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", string(edl.FormatCMX3600), "EDL format")
	RootCmd.AddCommand(exportCmd)
}
