package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rickgao/temarket-data/internal/writer"
)

// run executes the CLI with args and returns stdout, stderr and the exit code.
func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cli := NewCLI(&stderr)
	cli.root.SetOut(&stdout)
	code := cli.Run(context.Background(), args)
	return stdout.String(), stderr.String(), code
}

var smallMarket = []string{
	"--seed", "7",
	"--hours", "3",
	"--mean", "1",
	"--stddev", "1",
	"--sample-size", "2000",
}

func TestVersion(t *testing.T) {
	stdout, _, code := run(t, "version")
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(stdout, "tegen "), "got %q", stdout)
}

func TestVersionIgnoresConfig(t *testing.T) {
	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("market: [unterminated"), 0644))

	stdout, stderr, code := run(t, "version", "--config", broken, "--hours", "0")
	require.Equal(t, 0, code, stderr)
	require.True(t, strings.HasPrefix(stdout, "tegen "), "got %q", stdout)
}

func TestGenerateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")

	_, stderr, code := run(t, append([]string{"generate", "--out", path}, smallMarket...)...)
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stderr, "table exported")

	table, err := writer.ReadCSVFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, table)
	require.True(t, table.IsSorted())
	for _, r := range table {
		require.Less(t, r.Hour, 3)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	args := append([]string{"generate", "--out", "-"}, smallMarket...)

	first, _, code := run(t, args...)
	require.Equal(t, 0, code)
	second, _, code := run(t, args...)
	require.Equal(t, 0, code)

	require.True(t, strings.HasPrefix(first, strings.Join(writer.Columns, ",")+"\n"))
	require.Equal(t, first, second)
}

func TestGenerateWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "from-config.csv")
	cfg := filepath.Join(dir, "tegen.toml")
	content := `
seed = 11

[market]
hours = 4
distribution_mean = 1.5
distribution_stddev = 1.0
sample_size = 1000

[output]
csv_path = "` + filepath.ToSlash(out) + `"
`
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0644))

	_, stderr, code := run(t, "generate", "--config", cfg)
	require.Equal(t, 0, code, stderr)

	table, err := writer.ReadCSVFile(out)
	require.NoError(t, err)
	require.Equal(t, 4, table.Hours())
}

func TestInvalidOverride(t *testing.T) {
	_, stderr, code := run(t, "generate", "--out", "-", "--min-players", "500")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "market.min_players")
}

func TestDegenerateDistribution(t *testing.T) {
	_, stderr, code := run(t, "generate", "--out", "-", "--hours", "2", "--mean", "-50", "--stddev", "0.001")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "market.distribution_mean")
}

func TestSummaryFromInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	_, _, code := run(t, append([]string{"generate", "--out", path}, smallMarket...)...)
	require.Equal(t, 0, code)

	stdout, stderr, code := run(t, "summary", "--input", path)
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "Order book summary")
	require.Contains(t, stdout, "records per hour")
}

func TestPlot(t *testing.T) {
	stdout, stderr, code := run(t, append([]string{"plot", "--width", "20"}, smallMarket...)...)
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "Number of participants for each hour")
	require.Contains(t, stdout, "00 ")
	require.Contains(t, stdout, "02 ")
}
