package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"financas/internal/backend"
	"financas/internal/services"
)

type runner struct {
	t       *testing.T
	dataDir string
}

func newRunner(t *testing.T) *runner {
	t.Helper()
	for _, key := range []string{"FINANCAS_DATA_DIR", "LOG_LEVEL", "AMQP_URL", "DASHBOARD_CACHE_SIZE", "DASHBOARD_CACHE_TTL"} {
		t.Setenv(key, "")
	}
	return &runner{t: t, dataDir: t.TempDir()}
}

// run executes the CLI against the runner's data dir and returns stdout,
// stderr and the exit code.
func (r *runner) run(args ...string) (string, string, int) {
	r.t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"--data-dir", r.dataDir, "--log-level", "error"}, args...)
	code := Execute(context.Background(), full,
		WithOutput(&out, &errOut),
		WithClock(func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }),
		WithFactoryOptions(backend.WithAccountOptions(services.WithHashCost(bcrypt.MinCost))),
	)
	return out.String(), errOut.String(), code
}

func (r *runner) mustRun(args ...string) string {
	r.t.Helper()
	out, errOut, code := r.run(args...)
	require.Equal(r.t, ExitSuccess, code, "args=%v stderr=%s", args, errOut)
	return out
}

// seed creates account 1 with three entries and two goals.
func (r *runner) seed() {
	r.t.Helper()
	r.mustRun("register", "--name", "Ana", "--email", "ana@example.com", "--password", "segredo")
	r.mustRun("record", "add", "--owner", "1", "--kind", "receita", "--amount", "100",
		"--label", "Salário", "--category", "Salário", "--date", "2024-01-05")
	r.mustRun("record", "add", "--owner", "1", "--amount", "50",
		"--label", "mercado", "--category", "Alimentação", "--date", "2024-01-10")
	r.mustRun("record", "add", "--owner", "1", "--kind", "gasto", "--amount", "12,5",
		"--label", "ônibus", "--category", "Transporte", "--date", "2024-02-01")
	r.mustRun("goal", "set", "--owner", "1", "--category", "Alimentação", "--amount", "30")
	r.mustRun("goal", "set", "--owner", "1", "--category", "Transporte", "--amount", "200")
}
