package cli

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List timelines",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		timelines, err := s.List(cmd.Context())
		if err != nil {
			exitErr("list timelines", err)
		}
		printJSON(timelines)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <timeline-id>",
	Short: "Show a timeline",
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
		printJSON(timeline)
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(showCmd)
}
