package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kembang/internal/domain"
)

var (
	ageMonths int
	menuID    int64
	planDate  string
	portion   string
	correct   bool
)

func pmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pmt",
		Short: "Plan and log supplemental feeding (PMT)",
	}
	cmd.PersistentFlags().Int64Var(&childID, "child", 0, "child id (default: the active child)")
	cmd.AddCommand(pmtMenusCmd(), pmtSchedulesCmd(), pmtPlanCmd(), pmtLogCmd(), pmtProgressCmd())
	return cmd
}

// periodFlags registers --from and --to. Both default to the current month.
func periodFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&fromDate, "from", "", "first day (default: start of this month)")
	cmd.Flags().StringVar(&toDate, "to", "", "last day (default: end of this month)")
}

func pmtMenusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menus",
		Short: "List active PMT menus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session()
			if err != nil {
				return err
			}
			menus, err := sess.Pmt.Menus(cmd.Context(), ageMonths)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderer.PmtMenus(menus))
			return nil
		},
	}
	cmd.Flags().IntVar(&ageMonths, "age", 0, "only menus suited to this age in months")
	return cmd
}

func pmtSchedulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedules",
		Short: "List planned meals and what was eaten",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session()
			if err != nil {
				return err
			}
			list, err := sess.Pmt.Schedules(cmd.Context(), childID, domain.PmtPeriod{StartDate: fromDate, EndDate: toDate})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderer.PmtSchedules(list))
			return nil
		},
	}
	periodFlags(cmd)
	return cmd
}

func pmtPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Schedule a menu for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session()
			if err != nil {
				return err
			}
			sc, err := sess.Pmt.Plan(cmd.Context(), childID, menuID, planDate)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderer.PmtSchedules([]domain.PmtSchedule{sc}))
			return nil
		},
	}
	cmd.Flags().Int64Var(&menuID, "menu", 0, "menu id (see: kembang pmt menus)")
	cmd.Flags().StringVar(&planDate, "date", "", "day to serve it (default today)")
	_ = cmd.MarkFlagRequired("menu")
	return cmd
}

func pmtLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <schedule-id>",
		Short: "Record how much of a planned meal was eaten",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "schedule")
			if err != nil {
				return err
			}
			sess, err := session()
			if err != nil {
				return err
			}
			sc, err := sess.Pmt.Log(cmd.Context(), id, domain.PmtPortion(portion), notes, correct)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderer.PmtSchedules([]domain.PmtSchedule{sc}))
			return nil
		},
	}
	cmd.Flags().StringVar(&portion, "portion", "", "habis, half, quarter or none")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")
	cmd.Flags().BoolVar(&correct, "update", false, "replace an existing log")
	_ = cmd.MarkFlagRequired("portion")
	return cmd
}

func pmtProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show compliance for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session()
			if err != nil {
				return err
			}
			p, err := sess.Pmt.Progress(cmd.Context(), childID, domain.PmtPeriod{StartDate: fromDate, EndDate: toDate})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderer.PmtProgress(p))
			return nil
		},
	}
	periodFlags(cmd)
	return cmd
}
