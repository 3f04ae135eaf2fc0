package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kembang/internal/api"
	"kembang/internal/devserver"
	"kembang/internal/domain"
)

const testPass = "rahasia-lokal-1"

type harness struct {
	home string
	srv  *devserver.Server
	base string
	ts   *httptest.Server
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("KEMBANG_HOME", "")
	t.Setenv("KEMBANG_API_URL", "")
	t.Setenv("KEMBANG_PASSPHRASE", "")
	t.Setenv("NO_COLOR", "1")

	srv := devserver.New(nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return &harness{home: t.TempDir(), srv: srv, base: ts.URL + "/api/v1", ts: ts}
}

// run executes one CLI invocation and returns its stdout.
func (h *harness) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--home", h.home, "--api", h.base, "--no-color"}, args...))
	err := root.ExecuteContext(context.Background())
	_ = closeWire()
	return out.String(), err
}

func (h *harness) login(t *testing.T) {
	t.Helper()
	out, err := h.run(t, devserver.DemoPassword+"\n",
		"login", "-p", testPass, "--email", devserver.DemoEmail, "--password-stdin")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Logged in as")
	assert.Contains(t, out, devserver.DemoEmail)
}

func TestLoginWhoamiLogout(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	out, err := h.run(t, "", "whoami", "-p", testPass)
	require.NoError(t, err)
	assert.Contains(t, out, devserver.DemoEmail)

	_, err = h.run(t, "", "whoami", "-p", "salah-sandi-9")
	require.Error(t, err)

	out, err = h.run(t, "", "logout", "-p", testPass)
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	_, err = h.run(t, "", "whoami", "-p", testPass)
	require.Error(t, err)
}

func TestLoginRequiresPassphrase(t *testing.T) {
	h := newHarness(t)
	_, err := h.run(t, devserver.DemoPassword+"\n",
		"login", "--email", devserver.DemoEmail, "--password-stdin")
	require.Error(t, err)
	assert.Equal(t, 0, h.srv.Hits("login"))
}

func TestPassphraseFromEnvironment(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	t.Setenv("KEMBANG_PASSPHRASE", testPass)

	out, err := h.run(t, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, devserver.DemoEmail)
}

func TestChildrenUseMarksActive(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	out, err := h.run(t, "", "children", "use", "8", "-p", testPass)
	require.NoError(t, err)
	assert.Contains(t, out, "Ananda Rizky")

	out, err = h.run(t, "", "children", "-p", testPass)
	require.NoError(t, err)
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Ananda Rizky") {
			assert.Contains(t, line, "*")
		}
		if strings.Contains(line, "Budi Santoso") {
			assert.NotContains(t, line, "*")
		}
	}

	_, err = h.run(t, "", "children", "use", "999", "-p", testPass)
	require.Error(t, err)
	_, err = h.run(t, "", "children", "use", "abc", "-p", testPass)
	require.Error(t, err)
}

func TestAsq3Questions(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	out, err := h.run(t, "", "asq3", "questions", "3", "-p", testPass)
	require.NoError(t, err)
	assert.Contains(t, out, "24 Bulan")
	assert.Contains(t, out, "30. [")

	out, err = h.run(t, "", "asq3", "intervals", "-p", testPass)
	require.NoError(t, err)
	assert.Contains(t, out, "12 Bulan")
}

func TestScreeningListAndCancel(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	out, err := h.run(t, "", "screening", "list", "--child", "7", "-p", testPass)
	require.NoError(t, err)
	assert.Contains(t, out, "Belum ada screening")

	client := api.New(h.base, h.ts.Client()).WithToken(h.srv.IssueToken(devserver.DemoEmail))
	sc, err := client.CreateScreening(context.Background(), devserver.DemoChildID, domain.CreateScreeningRequest{})
	require.NoError(t, err)

	_, err = h.run(t, "", "children", "use", "7", "-p", testPass)
	require.NoError(t, err)

	out, err = h.run(t, "", "screening", "list", "-p", testPass)
	require.NoError(t, err)
	assert.Contains(t, out, "Sedang Dikerjakan")

	_, err = h.run(t, "", "screening", "results", "42", "-p", testPass)
	require.Error(t, err)

	out, err = h.run(t, "", "screening", "cancel", "42", "-p", testPass)
	require.NoError(t, err)
	assert.Equal(t, int64(42), sc.ID)
	assert.Contains(t, out, "Dibatalkan")
}

func TestScreeningWithoutChild(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	_, err := h.run(t, "", "screening", "list", "-p", testPass)
	require.Error(t, err)
	assert.Equal(t, 0, h.srv.Hits("screenings.list"))
}
