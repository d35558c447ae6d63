package cli

import (
	"github.com/spf13/cobra"

	"github.com/cutroom/roughcut/internal/assembly"
	"github.com/cutroom/roughcut/internal/domain"
)

var (
	assembleStrategy    string
	assembleGroupBy     string
	assembleTransitions bool
)

var assembleCmd = &cobra.Command{
	Use:   "assemble <timeline-id>",
	Short: "Assemble the registered assets into the timeline",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		c, err := openCatalog()
		if err != nil {
			exitErr("open catalog", err)
		}
		defer c.Close()

		timeline, err := s.Load(cmd.Context(), args[0])
		if err != nil {
			exitErr("load timeline", err)
		}

		assets, err := c.ListAssets(cmd.Context(), args[0])
		if err != nil {
			exitErr("list assets", err)
		}

		assembled, err := assembly.New().Assemble(timeline, assets, domain.AssemblyOptions{
			Strategy:       domain.Strategy(assembleStrategy),
			GroupBy:        assembleGroupBy,
			AddTransitions: assembleTransitions,
		})
		if err != nil {
			exitErr("assemble", err)
		}

		saved, err := s.Save(cmd.Context(), assembled)
		if err != nil {
			exitErr("save timeline", err)
		}
		printJSON(saved)
	},
}

func init() {
	assembleCmd.Flags().StringVar(&assembleStrategy, "strategy", string(domain.StrategyChronological), "Ordering strategy: chronological or semantic")
	assembleCmd.Flags().StringVar(&assembleGroupBy, "group-by", "", "Metadata key to group assets by (e.g. scene)")
	assembleCmd.Flags().BoolVar(&assembleTransitions, "transitions", false, "Synthesize dissolve transitions between clips")
	RootCmd.AddCommand(assembleCmd)
}
