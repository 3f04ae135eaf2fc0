package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func asq3Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asq3",
		Short: "ASQ-3 reference data",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "domains",
			Short: "List the five developmental domains",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := session()
				if err != nil {
					return err
				}
				domains, err := sess.API.Domains(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), renderer.Domains(domains))
				return nil
			},
		},
		&cobra.Command{
			Use:   "intervals",
			Short: "List age intervals",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := session()
				if err != nil {
					return err
				}
				intervals, err := sess.API.AgeIntervals(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), renderer.Intervals(intervals))
				return nil
			},
		},
		&cobra.Command{
			Use:   "questions <age-interval-id>",
			Short: "Print the questions of an age interval in presentation order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0], "age interval")
				if err != nil {
					return err
				}
				sess, err := session()
				if err != nil {
					return err
				}
				iv, seq, err := sess.Screening.Sequence(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), renderer.Questions(iv, seq))
				return nil
			},
		},
	)
	return cmd
}
