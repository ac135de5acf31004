package main

import (
	"github.com/rpgo/corpus-planner/internal/config"
	"github.com/spf13/cobra"
)

func (a *app) exampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print or save a sample plan to start from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan := config.NewInputParser().CreateExamplePlan(a.currentYear())
			if out, _ := cmd.Flags().GetString("out"); out != "" {
				if err := config.SavePlan(plan, out); err != nil {
					return err
				}
				a.logger.Infof("example plan written to %s", out)
				return nil
			}
			b, err := config.MarshalPlan(plan)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().String("out", "", "write the plan to this file instead of stdout")
	return cmd
}
