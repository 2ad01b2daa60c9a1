package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/plotfn"
)

func runTest(t *testing.T, stdin string, args ...string) (string, int) {
	t.Helper()
	var out bytes.Buffer
	status := run(args, strings.NewReader(stdin), &out)
	return out.String(), status
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunAt(t *testing.T) {
	out, status := runTest(t, "", "-at", "0,2", "1/x")
	assert.Equal(t, 0, status)
	assert.Equal(t, "0\t0 outside domain of / (argument 2)\n2\t0.5\n", out)

	out, status = runTest(t, "", "-at", "1000", "e ** x")
	assert.Equal(t, 0, status)
	assert.Equal(t, "1000\tresult +Inf is not finite\n", out)

	_, status = runTest(t, "", "-at", "1,y", "x")
	assert.Equal(t, 2, status)
}

func TestRunSample(t *testing.T) {
	out, status := runTest(t, "", "-min", "-1", "-max", "1", "-step", "0.5", "1/x")
	assert.Equal(t, 0, status)
	assert.Equal(t, "-1\t-1\n-0.5\t-2\n\n0.5\t2\n1\t1\n", out)

	_, status = runTest(t, "", "-min", "1", "-max", "-1", "x")
	assert.Equal(t, 2, status)
}

func TestRunParseError(t *testing.T) {
	out, status := runTest(t, "", "-at", "2", "x +", "x * 3")
	assert.Equal(t, 1, status)
	assert.Equal(t, "2\t6\n", out)
}

func TestRunJSON(t *testing.T) {
	out, status := runTest(t, "", "-json", "-min", "-1", "-max", "1", "-step", "0.5", "1/x", "sin x")
	assert.Equal(t, 1, status)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var r result
	require.NoError(t, jsonAPI.Unmarshal([]byte(lines[0]), &r))
	assert.Equal(t, "1 / x", r.Expr)
	assert.Empty(t, r.Error)
	assert.Equal(t, []plotfn.Segment{
		{{X: -1, Y: -1}, {X: -0.5, Y: -2}},
		{{X: 0.5, Y: 2}, {X: 1, Y: 1}},
	}, r.Segments)

	r = result{}
	require.NoError(t, jsonAPI.Unmarshal([]byte(lines[1]), &r))
	assert.Equal(t, "sin x", r.Expr)
	assert.Equal(t, "5: sin must be called with 1 argument in parentheses", r.Error)
	assert.Empty(t, r.Segments)
}

func TestRunJSONAt(t *testing.T) {
	out, status := runTest(t, "", "-json", "-at", "0,4", "sqrt(x - 1)")
	assert.Equal(t, 0, status)
	var r result
	require.NoError(t, jsonAPI.Unmarshal([]byte(out), &r))
	require.Len(t, r.Values, 2)
	assert.Nil(t, r.Values[0].Y)
	assert.Equal(t, "-1 outside domain of sqrt (argument 1)", r.Values[0].Error)
	require.NotNil(t, r.Values[1].Y)
	assert.InDelta(t, 1.7320508075688772, *r.Values[1].Y, 1e-15)
	assert.Empty(t, r.Values[1].Error)
}

func TestRunStdin(t *testing.T) {
	out, status := runTest(t, "x\n\n  2*x \n", "-at", "3")
	assert.Equal(t, 0, status)
	assert.Equal(t, "3\t3\n3\t6\n", out)
}

func TestRunInFile(t *testing.T) {
	path := writeFile(t, "exprs.txt", "x + 1\nx ** 2\n")
	out, status := runTest(t, "", "-in", path, "-at", "3", "--", "-x")
	assert.Equal(t, 0, status)
	assert.Equal(t, "3\t4\n3\t9\n3\t-3\n", out)

	_, status = runTest(t, "", "-in", filepath.Join(t.TempDir(), "nope"), "x")
	assert.Equal(t, 1, status)
}

func TestRunEcho(t *testing.T) {
	out, status := runTest(t, "", "-echo", "-at", "1", "(x+1)*2")
	assert.Equal(t, 0, status)
	assert.Equal(t, "(x + 1) * 2 : depth 4, size 6\n1\t4\n", out)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "plotfn.toml", `
format = "json"
verb = "%.3f"
log_level = 1
right_assoc_pow = true

[window]
min = -2.0
max = 2.0
step = 0.25
`)
	conf, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Window:        plotfn.Window{Min: -2, Max: 2, Step: 0.25},
		Format:        formatJSON,
		Verb:          "%.3f",
		LogLevel:      1,
		RightAssocPow: true,
	}, conf)
	assert.NoError(t, conf.validate())
	assert.Len(t, conf.parseOptions(), 1)

	conf, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), conf)
	assert.NoError(t, conf.validate())
	assert.Empty(t, conf.parseOptions())

	_, err = loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)

	path = writeFile(t, "bad.toml", "format = [")
	_, err = loadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Config)
	}{
		{"format", func(c *Config) { c.Format = "xml" }},
		{"verb", func(c *Config) { c.Verb = "" }},
		{"window", func(c *Config) { c.Window.Step = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			conf := defaultConfig()
			c.edit(&conf)
			assert.Error(t, conf.validate())
		})
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	path := writeFile(t, "plotfn.toml", `
verb = "%.1f"
right_assoc_pow = true

[window]
min = -2.0
max = 2.0
step = 1.0
`)
	out, status := runTest(t, "", "-config", path, "-step", "2", "x")
	assert.Equal(t, 0, status)
	assert.Equal(t, "-2.0\t-2.0\n0.0\t0.0\n2.0\t2.0\n", out)

	out, status = runTest(t, "", "-config", path, "-fmt", "%g", "-at", "0", "2 ** 3 ** 2")
	assert.Equal(t, 0, status)
	assert.Equal(t, "0\t512\n", out)

	out, status = runTest(t, "", "-config", path, "-rightpow=false", "-fmt", "%g", "-at", "0", "2 ** 3 ** 2")
	assert.Equal(t, 0, status)
	assert.Equal(t, "0\t64\n", out)

	bad := writeFile(t, "bad.toml", `format = "xml"`)
	_, status = runTest(t, "", "-config", bad, "x")
	assert.Equal(t, 2, status)
	_, status = runTest(t, "", "-config", bad, "-json", "-at", "1", "x")
	assert.Equal(t, 0, status)
}

func TestParsePoints(t *testing.T) {
	p, err := parsePoints("1, 2,,-3.5")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, -3.5}, p)

	_, err = parsePoints("1,a")
	assert.Error(t, err)
}
