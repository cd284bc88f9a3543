package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/farmstock/pkg/types"
)

// testDirs is an isolated config and data directory pair.
type testDirs struct {
	config string
	data   string
}

func newTestDirs(t *testing.T) testDirs {
	t.Helper()
	t.Setenv("FARMSTOCK_CONFIG_DIR", "")
	t.Setenv("FARMSTOCK_DATA_DIR", "")
	tmp := t.TempDir()
	return testDirs{
		config: filepath.Join(tmp, "config"),
		data:   filepath.Join(tmp, "data"),
	}
}

// run executes farmstock in-process against dirs with stdin as input.
func (d testDirs) run(t *testing.T, stdin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	root := NewRootCmd()
	var outBuf, errBuf bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(append([]string{"--config-dir", d.config, "--data-dir", d.data}, args...))

	err := root.Execute()
	if err != nil {
		fmt.Fprintf(&errBuf, "Error: %v\n", err)
	}
	return outBuf.String(), errBuf.String(), ExitCode(err)
}

// mustRun fails the test unless the command exits 0.
func (d testDirs) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	stdout, stderr, code := d.run(t, "", args...)
	require.Equal(t, exitSuccess, code, "farmstock %v: %s", args, stderr)
	return stdout
}

func writeConfigYAML(t *testing.T, configDir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt), []byte(content), 0o644))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitSuccess},
		{"validation", fmt.Errorf("x: %w", types.ErrInvalidThreshold), exitUserError},
		{"not found", fmt.Errorf("%w: animal 3", types.ErrNotFound), exitUserError},
		{"unclassified", errors.New("unknown command"), exitUserError},
		{"storage", fmt.Errorf("%w: insert: boom", types.ErrStorage), exitSysError},
		{"system", sysErrorf("load config: %w", errors.New("bad yaml")), exitSysError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestVersion(t *testing.T) {
	d := newTestDirs(t)
	out := d.mustRun(t, "version")
	assert.Contains(t, out, "farmstock v"+Version)
	assert.NoDirExists(t, d.data, "version must not open the store")
}

func TestInit(t *testing.T) {
	d := newTestDirs(t)

	out := d.mustRun(t, "init")
	assert.Contains(t, out, "Wrote")
	assert.Contains(t, out, "farmstock initialized successfully")
	assert.FileExists(t, filepath.Join(d.config, configFileExt))
	assert.FileExists(t, filepath.Join(d.data, types.DefaultDatabase))

	data, err := os.ReadFile(filepath.Join(d.config, configFileExt))
	require.NoError(t, err)
	assert.Contains(t, string(data), "data_dir: "+d.data)
	assert.Contains(t, string(data), "LivestockWeightTax: 0")

	out = d.mustRun(t, "init")
	assert.Contains(t, out, "Using", "second init keeps the existing config")
}

func TestInsertListDelete(t *testing.T) {
	d := newTestDirs(t)

	out := d.mustRun(t, "insert", "cow", "--water", "40", "--cost", "30", "--weight", "200", "--colour", "Brown", "--yield", "10")
	assert.Contains(t, out, "Cow added successfully with ID 1!")
	out = d.mustRun(t, "insert", "Sheep", "--weight", "60", "--colour", "White", "--yield", "2")
	assert.Contains(t, out, "Sheep added successfully with ID 2!")

	out = d.mustRun(t, "list")
	assert.Less(t, strings.Index(out, "Brown"), strings.Index(out, "White"))

	out = d.mustRun(t, "delete", "1")
	assert.Contains(t, out, "Animal type: Cow")

	_, stderr, code := d.run(t, "", "delete", "1")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "not found")

	out = d.mustRun(t, "list")
	assert.NotContains(t, out, "Brown")
}

func TestInsertErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown species", []string{"insert", "pig"}},
		{"negative water", []string{"insert", "goat", "--water", "-1"}},
		{"missing species", []string{"insert"}},
		{"bad flag value", []string{"insert", "cow", "--weight", "heavy"}},
		{"infinite weight", []string{"insert", "cow", "--weight", "Inf"}},
		{"NaN cost", []string{"insert", "sheep", "--cost", "NaN"}},
		{"negative infinite cost", []string{"insert", "goat", "--cost", "-Inf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDirs(t)
			_, _, code := d.run(t, "", tt.args...)
			assert.Equal(t, exitUserError, code)

			out := d.mustRun(t, "list")
			assert.Contains(t, out, "No farm animals to display.")
		})
	}
}

func TestEdit(t *testing.T) {
	d := newTestDirs(t)
	d.mustRun(t, "insert", "goat", "--water", "5", "--cost", "2", "--weight", "40", "--colour", "Black", "--yield", "3")
	d.mustRun(t, "insert", "goat", "--weight", "35")

	t.Run("only set flags change", func(t *testing.T) {
		stdout, stderr, code := d.run(t, "", "edit", "1", "--water", "7", "--weight", "-3", "--colour", "gREY")
		require.Equal(t, exitSuccess, code, stderr)
		assert.Contains(t, stderr, "Invalid input for weight")
		assert.Contains(t, stdout, "Grey")
		assert.Contains(t, stdout, "7.00")
		assert.Contains(t, stdout, "40.00", "rejected weight keeps its value")
		assert.Contains(t, stdout, "2.00", "unset cost keeps its value")
	})

	t.Run("non-finite values keep old values", func(t *testing.T) {
		stdout, stderr, code := d.run(t, "", "edit", "1", "--cost", "NaN", "--yield", "Inf")
		require.Equal(t, exitSuccess, code, stderr)
		assert.Contains(t, stderr, "Invalid input for cost")
		assert.Contains(t, stderr, "Invalid input for yield")
		assert.NotContains(t, stdout, "NaN")

		out := d.mustRun(t, "metrics")
		assert.Contains(t, out, "Total Cost Per Day:")
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		_, stderr, code := d.run(t, "", "edit", "1", "--id", "2")
		require.Equal(t, exitSuccess, code)
		assert.Contains(t, stderr, "Invalid input for id")
	})

	t.Run("new id persists", func(t *testing.T) {
		d.mustRun(t, "edit", "2", "--id", "9")
		out := d.mustRun(t, "query", "id", "9")
		assert.Contains(t, out, "Animal type: Goat")
	})

	t.Run("nothing to edit", func(t *testing.T) {
		_, _, code := d.run(t, "", "edit", "1")
		assert.Equal(t, exitUserError, code)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, _, code := d.run(t, "", "edit", "404", "--cost", "1")
		assert.Equal(t, exitUserError, code)
	})
}

func TestQuery(t *testing.T) {
	d := newTestDirs(t)
	d.mustRun(t, "insert", "cow", "--weight", "300", "--colour", "Brown", "--yield", "10")
	d.mustRun(t, "insert", "goat", "--weight", "40", "--colour", "brown", "--yield", "2")
	d.mustRun(t, "insert", "sheep", "--weight", "70", "--colour", "White", "--yield", "4")

	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"by id", []string{"query", "id", "3"}, exitSuccess, "Animal type: Sheep"},
		{"by id missing", []string{"query", "id", "8"}, exitUserError, ""},
		{"by id not a number", []string{"query", "id", "three"}, exitUserError, ""},
		{"by colour ignores case", []string{"query", "colour", "BROWN"}, exitSuccess, "Number of livestock in BROWN: 2"},
		{"by colour none", []string{"query", "colour", "Blue"}, exitSuccess, "No animals found with colour 'Blue'."},
		{"by type ignores case", []string{"query", "type", "gOaT"}, exitSuccess, "Number of Goat: 1"},
		{"by type unknown", []string{"query", "type", "Pig"}, exitUserError, ""},
		{"by weight", []string{"query", "weight", "50"}, exitSuccess, "Average Weight of animals above 50.00 KG: 185.00 KG"},
		{"by weight non-positive", []string{"query", "weight", "-2"}, exitUserError, ""},
		{"by weight NaN", []string{"query", "weight", "NaN"}, exitUserError, ""},
		{"by weight infinite", []string{"query", "weight", "Inf"}, exitUserError, ""},
		{"by weight none", []string{"query", "weight", "900"}, exitSuccess, "No animals found above"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, code := d.run(t, "", tt.args...)
			assert.Equal(t, tt.code, code)
			if tt.want != "" {
				assert.Contains(t, stdout, tt.want)
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	d := newTestDirs(t)
	writeConfigYAML(t, d.config, `currency: usd
prices:
  CowMilk: 2
  Water: 0.5
  LivestockWeightTax: 0.1
`)

	out := d.mustRun(t, "metrics")
	assert.Contains(t, out, "No farm animals to calculate metrics for.")

	d.mustRun(t, "insert", "cow", "--water", "40", "--cost", "30", "--weight", "10", "--yield", "200")
	out = d.mustRun(t, "metrics")
	assert.Contains(t, out, "CowMilkPrice: $2.00")
	assert.Contains(t, out, "Total Income Per Day: $400.00")
	assert.Contains(t, out, "Total Cost Per Day: $51.00")
	assert.Contains(t, out, "Profit: $349.00")
	assert.Contains(t, out, "Average Weight of all livestock: 10.00 KG")
}

func TestShell(t *testing.T) {
	d := newTestDirs(t)
	d.mustRun(t, "insert", "cow", "--colour", "Brown")

	t.Run("explicit subcommand", func(t *testing.T) {
		stdout, _, code := d.run(t, "1\n8\n", "shell")
		assert.Equal(t, exitSuccess, code)
		assert.Contains(t, stdout, "Choose an option:")
		assert.Contains(t, stdout, "Brown")
	})

	t.Run("root default", func(t *testing.T) {
		stdout, _, code := d.run(t, "")
		assert.Equal(t, exitSuccess, code)
		assert.Contains(t, stdout, "8. Exit")
	})
}

func TestUnknownCommand(t *testing.T) {
	d := newTestDirs(t)
	_, _, code := d.run(t, "", "frobnicate")
	assert.Equal(t, exitUserError, code)
}

func TestBadConfigIsSystemError(t *testing.T) {
	d := newTestDirs(t)
	writeConfigYAML(t, d.config, "prices: [not, a, map\n")

	_, _, code := d.run(t, "", "list")
	assert.Equal(t, exitSysError, code)
}

func TestBadLogLevel(t *testing.T) {
	d := newTestDirs(t)
	_, stderr, code := d.run(t, "", "--log-level", "loud", "list")
	assert.Equal(t, exitSysError, code)
	assert.Contains(t, stderr, "configure logging")
}
