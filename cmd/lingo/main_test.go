// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lingo/service"
)

const request = `{
  "language": "en",
  "documents": [
    {"snippet": "aa bb"}, {"snippet": "aa bb"}, {"snippet": "cc"},
    {"snippet": "cc"}, {"snippet": "aa bb"}, {"snippet": "aa bb"}
  ]
}`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestClusterCommand(t *testing.T) {
	in := writeFile(t, "req.json", request)
	cfg := writeFile(t, "params.yaml", "desiredClusterCount: 2\n")

	out, logs, err := run(t, "cluster", "--input", in, "--config", cfg, "--workers", "1", "--log-level", "debug")
	require.NoError(t, err)
	require.Contains(t, logs, "clustered")

	var resp service.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Clusters, 3)
	require.Equal(t, "cc", resp.Clusters[0].Label)
}

func TestClusterCommandMsgpack(t *testing.T) {
	in := writeFile(t, "req.json", request)
	out, _, err := run(t, "cluster", "-i", in, "-f", "msgpack", "--log-level", "disabled")
	require.NoError(t, err)

	resp, err := service.DecodeResponse(bytes.NewReader([]byte(out)))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Clusters)
}

func TestClusterCommandErrors(t *testing.T) {
	in := writeFile(t, "req.json", request)

	_, _, err := run(t, "cluster", "-i", in, "--log-level", "loud")
	require.Error(t, err)

	_, _, err = run(t, "cluster", "-i", in, "--workers", "0")
	require.Error(t, err)

	bad := writeFile(t, "params.yaml", "desiredClusters: 2\n")
	_, _, err = run(t, "cluster", "-i", in, "-c", bad)
	require.Error(t, err)

	_, _, err = run(t, "cluster", "-i", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParamsCommand(t *testing.T) {
	out, _, err := run(t, "params")
	require.NoError(t, err)
	require.Contains(t, out, "desiredClusterCount: 30")
	require.Contains(t, out, "minMembershipScore: 0.15")

	cfg := writeFile(t, "params.yaml", "factorization: nmf\n")
	out, _, err = run(t, "params", "--config", cfg)
	require.NoError(t, err)
	require.Contains(t, out, "maxIterations: 15")
}
