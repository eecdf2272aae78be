package cli_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/texttable/internal/cli"
)

const doc = `
border: single
header: [Name, Share]
columns:
  - label: Name
    align: left
  - label: Share
    precision: 1
    postfix: "%"
rows:
  - [alpha, 12.5]
  - [beta, 7.0]
`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	c := cli.New(io.Discard, cli.LogInfo)
	root := c.RootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRenderCommand(t *testing.T) {
	t.Parallel()
	path := writeDoc(t, "table.yaml", doc)
	out, _, err := execute(t, "render", path)
	require.NoError(t, err)
	assert.Equal(t, "Name  | Share\n------|------\nalpha | 12.5%\nbeta  |  7.0%\n", out)
}

func TestRenderCommandOverrides(t *testing.T) {
	t.Parallel()
	path := writeDoc(t, "table.yaml", doc)
	out, _, err := execute(t, "render", "--border", "none", "--margin", "> ", "--align", "left", path)
	require.NoError(t, err)
	assert.Equal(t, "> Name  Share\n> alpha 12.5%\n> beta  7.0 %\n", out)
}

func TestRenderCommandFormatFlag(t *testing.T) {
	t.Parallel()
	path := writeDoc(t, "table.txt", `{"header":["A"],"rows":[[1]]}`)
	out, _, err := execute(t, "render", "--format", "json", path)
	require.NoError(t, err)
	assert.Equal(t, "A\n1\n", out)
}

func TestRenderCommandMultipleFiles(t *testing.T) {
	t.Parallel()
	first := writeDoc(t, "a.json", `{"rows":[["x"]]}`)
	second := writeDoc(t, "b.toml", `rows = [["y"]]`)
	out, _, err := execute(t, "render", first, second)
	require.NoError(t, err)
	assert.Equal(t, "x\n\ny\n", out)
}

func TestRenderCommandOutputFile(t *testing.T) {
	t.Parallel()
	path := writeDoc(t, "table.yaml", doc)
	target := filepath.Join(t.TempDir(), "out.txt")
	out, status, err := execute(t, "render", "-o", target, path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, status, "Rendered 1 table(s)")
	assert.Contains(t, status, target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "alpha | 12.5%")
}

func TestRenderCommandErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args func(t *testing.T) []string
		want string
	}{
		"no args": {
			args: func(*testing.T) []string { return []string{"render"} },
			want: "requires at least 1 arg",
		},
		"unknown extension": {
			args: func(t *testing.T) []string { return []string{"render", writeDoc(t, "t.ini", "")} },
			want: "unsupported document format",
		},
		"unknown format flag": {
			args: func(t *testing.T) []string {
				return []string{"render", "--format", "xml", writeDoc(t, "t.yaml", doc)}
			},
			want: "unsupported document format",
		},
		"render failure": {
			args: func(t *testing.T) []string {
				return []string{"render", writeDoc(t, "t.yaml", "rows:\n  - [1.5]\n")}
			},
			want: "missing precision",
		},
		"unknown border": {
			args: func(t *testing.T) []string {
				return []string{"render", "--border", "wavy", writeDoc(t, "t.yaml", doc)}
			},
			want: "unknown border style",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, _, err := execute(t, tt.args(t)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLayoutCommand(t *testing.T) {
	t.Parallel()
	path := writeDoc(t, "table.yaml", doc)
	out, _, err := execute(t, "layout", path)
	require.NoError(t, err)
	want := "Column | Label | Width\n" +
		"-------|-------|------\n" +
		"     0 | Name  |     5\n" +
		"     1 | Share |     5\n"
	assert.Equal(t, want, out)
}

func TestBordersCommand(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "borders")
	require.NoError(t, err)
	for _, name := range []string{"none", "single", "double", "heavy"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "  apple |   3 |  1.25")
	assert.Contains(t, out, "-|-")
}

func TestVersionFlag(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "texttable version dev")
	assert.Contains(t, out, "commit: none")
	assert.Contains(t, out, "built: unknown")
}
