package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kembang/internal/domain"
)

var (
	childName   string
	birthday    string
	gender      string
	birthWeight float64
	birthHeight float64
	headCirc    float64
	inactive    bool
)

func childrenCmd() *cobra.Command {
	var activeOnly bool
	cmd := &cobra.Command{
		Use:   "children",
		Short: "List your children (* marks the active child)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session()
			if err != nil {
				return err
			}
			kids, active, err := sess.Children.List(cmd.Context(), activeOnly)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderer.Children(kids, active))
			return nil
		},
	}
	cmd.Flags().BoolVar(&activeOnly, "active-only", false, "hide inactive profiles")
	cmd.AddCommand(
		childrenUseCmd(),
		childrenShowCmd(),
		childrenAddCmd(),
		childrenEditCmd(),
		childrenRemoveCmd(),
	)
	return cmd
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}

func childrenUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <child-id>",
		Short: "Choose the child other commands default to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "child")
			if err != nil {
				return err
			}
			sess, err := session()
			if err != nil {
				return err
			}
			child, err := sess.Children.Use(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active child: %s (%d)\n", child.Name, child.ID)
			return nil
		},
	}
}

func childrenShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <child-id>",
		Short: "Show one profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "child")
			if err != nil {
				return err
			}
			sess, err := session()
			if err != nil {
				return err
			}
			child, err := sess.API.GetChild(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderer.Child(child))
			return nil
		},
	}
}

// childFlags registers the profile flags shared by add and edit.
func childFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&childName, "name", "", "child's name")
	cmd.Flags().StringVar(&birthday, "birthday", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gender, "gender", "", "male, female or other")
	cmd.Flags().Float64Var(&birthWeight, "birth-weight", 0, "birth weight in kg")
	cmd.Flags().Float64Var(&birthHeight, "birth-height", 0, "birth length in cm")
	cmd.Flags().Float64Var(&headCirc, "head", 0, "head circumference at birth in cm")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "mark the profile inactive")
}

// changedFloat returns &v when flag was given on the command line.
func changedFloat(cmd *cobra.Command, flag string, v float64) *float64 {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &v
}

func childrenAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a child profile (the first one becomes active)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session()
			if err != nil {
				return err
			}
			active := !inactive
			child, err := sess.Children.Add(cmd.Context(), domain.CreateChildRequest{
				Name:              childName,
				Birthday:          birthday,
				Gender:            domain.Gender(gender),
				BirthWeight:       changedFloat(cmd, "birth-weight", birthWeight),
				BirthHeight:       changedFloat(cmd, "birth-height", birthHeight),
				HeadCircumference: changedFloat(cmd, "head", headCirc),
				IsActive:          &active,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s", renderer.Child(child))
			return nil
		},
	}
	childFlags(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("birthday")
	_ = cmd.MarkFlagRequired("gender")
	return cmd
}

func childrenEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <child-id>",
		Short: "Change the given fields of a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "child")
			if err != nil {
				return err
			}
			var req domain.UpdateChildRequest
			if cmd.Flags().Changed("name") {
				req.Name = &childName
			}
			if cmd.Flags().Changed("birthday") {
				req.Birthday = &birthday
			}
			if cmd.Flags().Changed("gender") {
				g := domain.Gender(gender)
				req.Gender = &g
			}
			if cmd.Flags().Changed("inactive") {
				active := !inactive
				req.IsActive = &active
			}
			req.BirthWeight = changedFloat(cmd, "birth-weight", birthWeight)
			req.BirthHeight = changedFloat(cmd, "birth-height", birthHeight)
			req.HeadCircumference = changedFloat(cmd, "head", headCirc)

			sess, err := session()
			if err != nil {
				return err
			}
			child, err := sess.Children.Edit(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s", renderer.Child(child))
			return nil
		},
	}
	childFlags(cmd)
	return cmd
}

func childrenRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <child-id>",
		Short: "Delete a profile with its screenings and records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "child")
			if err != nil {
				return err
			}
			sess, err := session()
			if err != nil {
				return err
			}
			if err := sess.Children.Remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed child %d\n", id)
			return nil
		},
	}
}
