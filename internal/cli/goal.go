package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"financas/internal/core"
)

func newGoalCommand(ro *RootOptions) *cobra.Command {
	var owner int64

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage spending goals per category",
	}
	addOwnerFlag(cmd, &owner)

	cmd.AddCommand(newGoalSetCommand(ro, &owner))
	cmd.AddCommand(newGoalListCommand(ro, &owner))
	cmd.AddCommand(newGoalDeleteCommand(ro, &owner))
	return cmd
}

func newGoalSetCommand(ro *RootOptions, owner *int64) *cobra.Command {
	var category, amount string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the spending goal of a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOwner(*owner); err != nil {
				return err
			}
			target, err := core.ParseAmount(amount)
			if err != nil {
				return err
			}
			b, err := ro.open(cmd.Context())
			if err != nil {
				return err
			}
			id, err := b.Ledger.SetGoal(cmd.Context(), *owner, category, target)
			if err != nil {
				return err
			}
			return ro.formatter().Success(resultView{
				Action:  "goal_set",
				ID:      id,
				Message: fmt.Sprintf("Meta %d definida: %s %s", id, category, formatMoney(printer, target)),
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "expense category")
	cmd.Flags().StringVar(&amount, "amount", "", "spending ceiling, e.g. 300,00")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newGoalListCommand(ro *RootOptions, owner *int64) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOwner(*owner); err != nil {
				return err
			}
			b, err := ro.open(cmd.Context())
			if err != nil {
				return err
			}
			goals, err := b.Ledger.Goals(cmd.Context(), *owner)
			if err != nil {
				return err
			}
			out := make(goalList, 0, len(goals))
			for _, g := range goals {
				out = append(out, goalView{ID: g.ID, Category: g.Category, Target: g.Target})
			}
			return ro.formatter().Success(out)
		},
	}
}

func newGoalDeleteCommand(ro *RootOptions, owner *int64) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOwner(*owner); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			b, err := ro.open(cmd.Context())
			if err != nil {
				return err
			}
			if err := b.Ledger.RemoveGoal(cmd.Context(), *owner, id); err != nil {
				return err
			}
			return ro.formatter().Success(resultView{
				Action:  "goal_delete",
				ID:      id,
				Message: fmt.Sprintf("Meta %d excluída", id),
			})
		},
	}
}
