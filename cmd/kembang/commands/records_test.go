package commands

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kembang/internal/devserver"
)

var demoChild = strconv.FormatInt(devserver.DemoChildID, 10)

func TestRegisterLogsIn(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "sandi-baru-9\n", "register", "-p", testPass,
		"--name", "Wulan", "--email", "wulan@example.test", "--password-stdin")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Registered and logged in as Wulan")

	out, err = h.run(t, "", "whoami", "-p", testPass)
	require.NoError(t, err)
	assert.Contains(t, out, "wulan@example.test")

	out, err = h.run(t, "", "children", "-p", testPass)
	require.NoError(t, err)
	assert.Contains(t, out, "Belum ada data anak")
}

func TestChildrenAddEditRemove(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	born := time.Now().AddDate(0, -6, 0).Format("2006-01-02")

	out, err := h.run(t, "", "children", "add", "-p", testPass,
		"--name", "Cahaya", "--birthday", born, "--gender", "female", "--birth-weight", "3.3")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Added Cahaya")
	assert.Contains(t, out, "3.3 kg")

	// The first child added becomes active.
	out, err = h.run(t, "", "children", "-p", testPass)
	require.NoError(t, err)
	var id string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Cahaya") {
			assert.True(t, strings.HasPrefix(line, "*"))
			id = strings.Fields(line)[1]
		}
	}
	require.NotEmpty(t, id)

	out, err = h.run(t, "", "children", "edit", id, "-p", testPass, "--name", "Cahaya Putri")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Updated Cahaya Putri")
	assert.Contains(t, out, born)

	_, err = h.run(t, "", "children", "add", "-p", testPass, "--name", "X", "--birthday", "kemarin", "--gender", "female")
	require.Error(t, err)
	assert.Equal(t, 1, h.srv.Hits("children.create"))

	out, err = h.run(t, "", "children", "remove", id, "-p", testPass)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed child "+id)
	_, err = h.run(t, "", "growth", "list", "-p", testPass)
	require.Error(t, err)
}

func TestGrowthAddAndList(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	out, err := h.run(t, "", "growth", "add", "--child", demoChild, "-p", testPass,
		"--weight", "12", "--height", "90", "--location", "posyandu")
	require.NoError(t, err, out)
	assert.Contains(t, out, "IMT 14.8")

	out, err = h.run(t, "", "growth", "list", "--child", demoChild, "-p", testPass)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], time.Now().Format("2006-01-02"))

	out, err = h.run(t, "", "growth", "list", "--child", demoChild, "--per-page", "1", "-p", testPass)
	require.NoError(t, err)
	assert.Contains(t, out, "page 1 of 2 (2 total)")

	_, err = h.run(t, "", "growth", "add", "--child", demoChild, "-p", testPass, "--weight", "0", "--height", "90")
	require.Error(t, err)
	assert.Equal(t, 1, h.srv.Hits("anthropometry.create"))
}

func TestPmtPlanLogProgress(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	_, err := h.run(t, "", "children", "use", demoChild, "-p", testPass)
	require.NoError(t, err)

	out, err := h.run(t, "", "pmt", "menus", "--age", "24", "-p", testPass)
	require.NoError(t, err)
	assert.Contains(t, out, "Bubur Kacang Hijau")
	assert.NotContains(t, out, "Puree Labu Kuning")

	out, err = h.run(t, "", "pmt", "plan", "--menu", "1", "-p", testPass)
	require.NoError(t, err, out)
	assert.Contains(t, out, "belum dicatat")
	schedule := strings.Fields(out)[0]

	out, err = h.run(t, "", "pmt", "log", schedule, "--portion", "half", "-p", testPass)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Setengah")

	_, err = h.run(t, "", "pmt", "log", schedule, "--portion", "habis", "-p", testPass)
	require.Error(t, err)
	out, err = h.run(t, "", "pmt", "log", schedule, "--portion", "habis", "--update", "-p", testPass)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Habis")

	_, err = h.run(t, "", "pmt", "log", schedule, "--portion", "banyak", "-p", testPass)
	require.Error(t, err)

	out, err = h.run(t, "", "pmt", "progress", "-p", testPass)
	require.NoError(t, err)
	assert.Contains(t, out, "Kepatuhan: 100.0%")

	out, err = h.run(t, "", "pmt", "schedules", "--child", strconv.FormatInt(devserver.DemoToddlerID, 10), "-p", testPass)
	require.NoError(t, err)
	assert.Contains(t, out, "Belum ada jadwal PMT")
}
