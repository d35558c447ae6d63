package cli

import (
	"github.com/spf13/cobra"

	"github.com/cutroom/roughcut/internal/domain"
)

var (
	createFramerate  int
	createResolution string
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new timeline",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		timeline, err := s.Create(cmd.Context(), domain.Timeline{
			Name:       args[0],
			Framerate:  createFramerate,
			Resolution: createResolution,
		})
		if err != nil {
			exitErr("create timeline", err)
		}
		printJSON(timeline)
	},
}

func init() {
	createCmd.Flags().IntVar(&createFramerate, "framerate", domain.DefaultFramerate, "Timeline framerate (frames per second)")
	createCmd.Flags().StringVar(&createResolution, "resolution", "1920x1080", "Timeline resolution")
	RootCmd.AddCommand(createCmd)
}
