package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"kembang/internal/domain"
	"kembang/internal/services/screening"
	"kembang/internal/tui"
)

var (
	childID       int64
	screeningID   int64
	ageIntervalID int64
	perPage       int
)

func screeningCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screening",
		Short: "Run and review ASQ-3 screenings",
	}
	cmd.PersistentFlags().Int64Var(&childID, "child", 0, "child id (default: the active child)")
	cmd.AddCommand(screeningListCmd(), screeningStartCmd(), screeningResultsCmd(), screeningCancelCmd())
	return cmd
}

func screeningListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the child's screenings, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session()
			if err != nil {
				return err
			}
			list, err := sess.Screening.List(cmd.Context(), childID, perPage)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderer.Screenings(list))
			return nil
		},
	}
	cmd.Flags().IntVar(&perPage, "per-page", 0, "page size (backend default when 0)")
	return cmd
}

func screeningStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Answer the questionnaire (resumes an in-progress screening)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session()
			if err != nil {
				return err
			}
			svc := sess.Screening
			load := func(ctx context.Context, r screening.ResultsRoute) (domain.ScreeningResults, error) {
				return svc.Results(ctx, r.ChildID, r.ScreeningID)
			}
			params := screening.Params{ChildID: childID, ScreeningID: screeningID, AgeIntervalID: ageIntervalID}
			model := tui.New(cmd.Context(), svc, params, load, renderer)
			defer model.Questionnaire().Close()

			p := tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().Int64Var(&screeningID, "screening", 0, "screening id to continue")
	cmd.Flags().Int64Var(&ageIntervalID, "age-interval", 0, "age interval of --screening")
	return cmd
}

func screeningResultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "results <screening-id>",
		Short: "Show scored results and recommendations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "screening")
			if err != nil {
				return err
			}
			sess, err := session()
			if err != nil {
				return err
			}
			res, err := sess.Screening.Results(cmd.Context(), childID, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderer.Results(res))
			return nil
		},
	}
}

func screeningCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <screening-id>",
		Short: "Cancel an in-progress screening",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "screening")
			if err != nil {
				return err
			}
			sess, err := session()
			if err != nil {
				return err
			}
			sc, err := sess.Screening.Cancel(cmd.Context(), childID, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Screening %d: %s\n", sc.ID, sc.StatusLabel)
			return nil
		},
	}
}
