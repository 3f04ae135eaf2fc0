package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kembang/internal/domain"
)

var (
	fromDate string
	toDate   string
	page     int

	measuredOn string
	weight     float64
	height     float64
	lying      bool
	location   string
	notes      string
)

func growthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Record and review weight and height measurements",
	}
	cmd.PersistentFlags().Int64Var(&childID, "child", 0, "child id (default: the active child)")
	cmd.AddCommand(growthListCmd(), growthAddCmd())
	return cmd
}

func growthListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List measurements, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session()
			if err != nil {
				return err
			}
			list, meta, err := sess.Growth.History(cmd.Context(), childID, domain.AnthropometryListOptions{
				Page:      page,
				PerPage:   perPage,
				StartDate: fromDate,
				EndDate:   toDate,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderer.Measurements(list))
			if meta.LastPage > 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d total)\n", meta.CurrentPage, meta.LastPage, meta.Total)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "page size (backend default when 0)")
	cmd.Flags().StringVar(&fromDate, "from", "", "earliest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toDate, "to", "", "latest date (YYYY-MM-DD)")
	return cmd
}

func growthAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a measurement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session()
			if err != nil {
				return err
			}
			m, err := sess.Growth.Record(cmd.Context(), childID, domain.CreateAnthropometryRequest{
				MeasurementDate:     measuredOn,
				Weight:              weight,
				Height:              height,
				HeadCircumference:   changedFloat(cmd, "head", headCirc),
				IsLying:             lying,
				MeasurementLocation: domain.MeasurementLocation(location),
				Notes:               notes,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderer.Measurements([]domain.Anthropometry{m}))
			return nil
		},
	}
	cmd.Flags().StringVar(&measuredOn, "date", "", "measurement date (default today)")
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	cmd.Flags().Float64Var(&height, "height", 0, "height or length in cm")
	cmd.Flags().Float64Var(&headCirc, "head", 0, "head circumference in cm")
	cmd.Flags().BoolVar(&lying, "lying", false, "length measured lying down")
	cmd.Flags().StringVar(&location, "location", "", "posyandu, home, clinic, hospital or other")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}
