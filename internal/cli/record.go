package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"financas/internal/core"
	"financas/internal/services"
)

type entryFlags struct {
	kind     string
	amount   string
	label    string
	category string
	date     string
}

func (f *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "kind", "expense", "expense (gasto) or income (receita)")
	cmd.Flags().StringVar(&f.amount, "amount", "", "positive amount, e.g. 12,50")
	cmd.Flags().StringVar(&f.label, "label", "", "description")
	cmd.Flags().StringVar(&f.category, "category", "", "category, e.g. Alimentação")
	cmd.Flags().StringVar(&f.date, "date", "", "entry date YYYY-MM-DD (default today)")
}

func newRecordCommand(ro *RootOptions) *cobra.Command {
	var owner int64

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Manage income and expense entries",
	}
	addOwnerFlag(cmd, &owner)

	cmd.AddCommand(newRecordAddCommand(ro, &owner))
	cmd.AddCommand(newRecordListCommand(ro, &owner))
	cmd.AddCommand(newRecordEditCommand(ro, &owner))
	cmd.AddCommand(newRecordDeleteCommand(ro, &owner))
	return cmd
}

func newRecordAddCommand(ro *RootOptions, owner *int64) *cobra.Command {
	var flags entryFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOwner(*owner); err != nil {
				return err
			}
			kind, err := core.ParseEntryKind(flags.kind)
			if err != nil {
				return err
			}
			amount, err := core.ParseAmount(flags.amount)
			if err != nil {
				return err
			}
			date := flags.date
			if date == "" {
				date = ro.today()
			}

			b, err := ro.open(cmd.Context())
			if err != nil {
				return err
			}
			id, err := b.Ledger.AddEntry(cmd.Context(), services.EntryInput{
				OwnerID:  *owner,
				Kind:     kind,
				Amount:   amount,
				Label:    flags.label,
				Category: flags.category,
				Date:     date,
			})
			if err != nil {
				return err
			}
			return ro.formatter().Success(resultView{
				Action:  "record_add",
				ID:      id,
				Message: fmt.Sprintf("Registro %d salvo", id),
			})
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newRecordListCommand(ro *RootOptions, owner *int64) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entries, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOwner(*owner); err != nil {
				return err
			}
			b, err := ro.open(cmd.Context())
			if err != nil {
				return err
			}
			records, err := b.Ledger.Entries(cmd.Context(), *owner)
			if err != nil {
				return err
			}
			out := make(recordList, 0, len(records))
			for _, r := range records {
				out = append(out, newRecordView(r))
			}
			return ro.formatter().Success(out)
		},
	}
}

func newRecordEditCommand(ro *RootOptions, owner *int64) *cobra.Command {
	var flags entryFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an entry; omitted flags keep their current value",
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
			current, err := b.Store.GetRecord(cmd.Context(), id)
			if err != nil {
				return err
			}
			if current == nil || current.OwnerID != *owner {
				return core.ErrRecordNotFound
			}

			in := services.EntryInput{
				OwnerID:  *owner,
				Kind:     current.Kind(),
				Amount:   current.Amount.Abs(),
				Label:    current.Label,
				Category: current.Category,
				Date:     current.EntryDate,
			}
			changed := cmd.Flags().Changed
			if changed("kind") {
				if in.Kind, err = core.ParseEntryKind(flags.kind); err != nil {
					return err
				}
			}
			if changed("amount") {
				if in.Amount, err = core.ParseAmount(flags.amount); err != nil {
					return err
				}
			}
			if changed("label") {
				in.Label = flags.label
			}
			if changed("category") {
				in.Category = flags.category
			}
			if changed("date") {
				in.Date = flags.date
			}

			if err := b.Ledger.EditEntry(cmd.Context(), id, in); err != nil {
				return err
			}
			return ro.formatter().Success(resultView{
				Action:  "record_edit",
				ID:      id,
				Message: fmt.Sprintf("Registro %d atualizado", id),
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func newRecordDeleteCommand(ro *RootOptions, owner *int64) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
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
			if err := b.Ledger.RemoveEntry(cmd.Context(), *owner, id); err != nil {
				return err
			}
			return ro.formatter().Success(resultView{
				Action:  "record_delete",
				ID:      id,
				Message: fmt.Sprintf("Registro %d excluído", id),
			})
		},
	}
}
