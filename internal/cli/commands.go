package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"financas/internal/core"
	"financas/internal/services"
	"financas/internal/storage"
)

func newInitCommand(ro *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or open the database and apply the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := ro.open(cmd.Context())
			if err != nil {
				return err
			}
			version, _, err := storage.SchemaVersion(b.Store.Path())
			if err != nil {
				return err
			}
			return ro.formatter().Success(resultView{
				Action:  "init",
				ID:      int64(version),
				Message: fmt.Sprintf("Banco de dados pronto em %s (esquema versão %d)", b.Store.Path(), version),
			})
		},
	}
}

func newRegisterCommand(ro *RootOptions) *cobra.Command {
	var in services.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := ro.open(cmd.Context())
			if err != nil {
				return err
			}
			id, err := b.Accounts.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			return ro.formatter().Success(resultView{
				Action:  "register",
				ID:      id,
				Message: fmt.Sprintf("Conta %d criada para %s", id, strings.TrimSpace(in.Email)),
			})
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "account holder name")
	cmd.Flags().StringVar(&in.Email, "email", "", "login email")
	cmd.Flags().StringVar(&in.Password, "password", "", "password (at least 6 characters)")
	return cmd
}

func newLoginCommand(ro *RootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check credentials and print the account id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := ro.open(cmd.Context())
			if err != nil {
				return err
			}
			acc, err := b.Accounts.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return ro.formatter().Success(newAccountView(*acc))
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

func newAccountsCommand(ro *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List registered accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := ro.open(cmd.Context())
			if err != nil {
				return err
			}
			accounts, err := b.Accounts.Accounts(cmd.Context())
			if err != nil {
				return err
			}
			out := make(accountList, 0, len(accounts))
			for _, a := range accounts {
				out = append(out, newAccountView(a))
			}
			return ro.formatter().Success(out)
		},
	}
}

func newDashboardCommand(ro *RootOptions) *cobra.Command {
	var owner int64

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals, spending per category and monthly trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOwner(owner); err != nil {
				return err
			}
			b, err := ro.open(cmd.Context())
			if err != nil {
				return err
			}
			sum, err := b.Dashboard.Dashboard(cmd.Context(), owner)
			if err != nil {
				return err
			}
			return ro.formatter().Success(dashboardView(sum))
		},
	}

	addOwnerFlag(cmd, &owner)
	return cmd
}

func addOwnerFlag(cmd *cobra.Command, owner *int64) {
	cmd.PersistentFlags().Int64Var(owner, "owner", 0, "account id (see login)")
	_ = cmd.MarkPersistentFlagRequired("owner")
}

func checkOwner(owner int64) error {
	if owner <= 0 {
		return core.ErrInvalidOwnerID
	}
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, WrapExitError(ExitCommandError, fmt.Sprintf("invalid id %q", arg), err)
	}
	return id, nil
}
