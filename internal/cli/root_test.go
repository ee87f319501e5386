package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "financas", cmd.Use)
	assert.Contains(t, cmd.Long, "SQLite")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := [][]string{
		{"init"}, {"register"}, {"login"}, {"accounts"}, {"dashboard"},
		{"record", "add"}, {"record", "list"}, {"record", "edit"}, {"record", "delete"},
		{"goal", "set"}, {"goal", "list"}, {"goal", "delete"},
	}

	for _, path := range commands {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err, "command %v should exist", path)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	for _, name := range []string{"data-dir", "log-level", "env-file"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestInvalidFormat(t *testing.T) {
	r := newRunner(t)
	_, errOut, code := r.run("--format", "xml", "accounts")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, errOut, `invalid format "xml"`)
}

func TestInit(t *testing.T) {
	r := newRunner(t)
	out := r.mustRun("init")
	assert.Contains(t, out, "users.db")
	assert.Contains(t, out, "esquema versão 3")

	out = r.mustRun("init")
	assert.Contains(t, out, "esquema versão 3", "init is idempotent")
}

func TestRegisterLoginAccounts(t *testing.T) {
	r := newRunner(t)

	out := r.mustRun("register", "--name", "Ana", "--email", "ana@example.com", "--password", "segredo")
	assert.Equal(t, "Conta 1 criada para ana@example.com\n", out)

	out = r.mustRun("login", "--email", "ANA@example.com", "--password", "segredo")
	assert.Equal(t, "Bem-vindo(a), Ana (conta 1)\n", out)

	_, errOut, code := r.run("login", "--email", "ana@example.com", "--password", "errado")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "invalid email or password")

	_, errOut, code = r.run("register", "--name", "Outra", "--email", "ana@example.com", "--password", "segredo")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "email already registered")
}

func TestRecordValidationErrors(t *testing.T) {
	r := newRunner(t)
	r.mustRun("register", "--name", "Ana", "--email", "ana@example.com", "--password", "segredo")

	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"bad amount", []string{"record", "add", "--owner", "1", "--amount", "abc", "--label", "x", "--category", "Lazer"}, "invalid amount"},
		{"bad date", []string{"record", "add", "--owner", "1", "--amount", "1", "--label", "x", "--category", "Lazer", "--date", "15/03/2024"}, "invalid entry date"},
		{"bad kind", []string{"record", "add", "--owner", "1", "--amount", "1", "--label", "x", "--category", "Lazer", "--kind", "transfer"}, "invalid entry kind"},
		{"missing owner", []string{"record", "add", "--owner", "99", "--amount", "1", "--label", "x", "--category", "Lazer"}, "owner not found"},
		{"zero owner", []string{"record", "list", "--owner", "0"}, "invalid owner id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, errOut, code := r.run(tc.args...)
			assert.Equal(t, ExitFailure, code)
			assert.Contains(t, errOut, tc.msg)
		})
	}
}

func TestRecordDefaultsToToday(t *testing.T) {
	r := newRunner(t)
	r.mustRun("register", "--name", "Ana", "--email", "ana@example.com", "--password", "segredo")
	r.mustRun("record", "add", "--owner", "1", "--amount", "9,90", "--label", "café", "--category", "Alimentação")

	out := r.mustRun("record", "list", "--owner", "1")
	assert.Contains(t, out, "2024-03-15")
	assert.Contains(t, out, "-R$ 9,90")
}

func TestRecordEditKeepsUnchangedFields(t *testing.T) {
	r := newRunner(t)
	r.seed()

	out := r.mustRun("record", "edit", "2", "--owner", "1", "--amount", "20")
	assert.Equal(t, "Registro 2 atualizado\n", out)

	out = r.mustRun("record", "list", "--owner", "1")
	assert.Contains(t, out, "2024-01-10  despesa  Alimentação  mercado    -R$ 20,00")

	_, _, code := r.run("record", "edit", "2", "--owner", "2", "--amount", "20")
	assert.Equal(t, ExitFailure, code)
	_, errOut, code := r.run("record", "edit", "abc", "--owner", "1")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, errOut, `invalid id "abc"`)
}

func TestRecordAndGoalDelete(t *testing.T) {
	r := newRunner(t)
	r.seed()

	assert.Equal(t, "Registro 3 excluído\n", r.mustRun("record", "delete", "3", "--owner", "1"))
	_, errOut, code := r.run("record", "delete", "3", "--owner", "1")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "record not found")

	assert.Equal(t, "Meta 2 excluída\n", r.mustRun("goal", "delete", "2", "--owner", "1"))
	_, errOut, code = r.run("goal", "delete", "2", "--owner", "1")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "goal not found")
}

func TestEmptyListings(t *testing.T) {
	r := newRunner(t)
	assert.Equal(t, "Nenhuma conta cadastrada.\n", r.mustRun("accounts"))
	r.mustRun("register", "--name", "Ana", "--email", "ana@example.com", "--password", "segredo")
	assert.Equal(t, "Nenhum registro.\n", r.mustRun("record", "list", "--owner", "1"))
	assert.Equal(t, "Nenhuma meta definida.\n", r.mustRun("goal", "list", "--owner", "1"))
	assert.Equal(t, "Saldo:      R$ 0,00\nReceitas:   R$ 0,00\nDespesas:   R$ 0,00\nRegistros:  0\n",
		r.mustRun("dashboard", "--owner", "1"))
}
