package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	ndtest "github.com/arloliu/ndspace/testing"
	"github.com/arloliu/ndspace/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "space.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(t.Context())

	return out.String(), err
}

const gridConfig = `
start: [1, 1]
limit: [99, 99]
splitDimension: 0
workers: 2
`

func TestPlanCmd(t *testing.T) {
	out, err := run(t, "plan", "-f", writeConfig(t, gridConfig))
	require.NoError(t, err)

	require.Contains(t, out, "space:       [1,99)x[1,99) (9604 indices)")
	require.Contains(t, out, "dimension 0 over 2 workers (static)")
	require.Contains(t, out, "[1,50)x[1,99)")
	require.Contains(t, out, "[50,99)x[1,99)")
}

func TestWalkCmd(t *testing.T) {
	cfg := writeConfig(t, "start: [1, 1]\nlimit: [4, 4]\nworkers: 1\norder: column-major\n")

	out, err := run(t, "walk", "-f", cfg, "--max", "4")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{"[1 1]", "[2 1]", "[3 1]", "[1 2]", "... 5 more"}, lines)
}

func TestWalkCmd_InvalidWorker(t *testing.T) {
	_, err := run(t, "walk", "-f", writeConfig(t, gridConfig), "--worker", "5")
	require.ErrorIs(t, err, types.ErrInvalidWorker)
}

func TestPlanCmd_InvalidConfig(t *testing.T) {
	_, err := run(t, "plan", "-f", writeConfig(t, "start: [0]\nlimit: [4]\nworkers: -1\n"))
	require.ErrorIs(t, err, types.ErrInvalidConfig)
}

func TestPublishAndFetchCmd(t *testing.T) {
	ns, _ := ndtest.StartEmbeddedNATS(t)
	url := ns.ClientURL()

	out, err := run(t, "publish", "-f", writeConfig(t, gridConfig), "--nats", url, "--name", "grid")
	require.NoError(t, err)
	require.Contains(t, out, "published grid at revision 1")

	out, err = run(t, "fetch", "--nats", url, "--name", "grid", "--worker", "1")
	require.NoError(t, err)
	require.Contains(t, out, "worker 1 of 2 owns [50,99) of dimension 0")

	_, err = run(t, "fetch", "--nats", url, "--name", "missing")
	require.ErrorIs(t, err, types.ErrPlanNotFound)
}
