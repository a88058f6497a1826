package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmostafa/docindex/internal/index"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeIndex(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerateToStdout(t *testing.T) {
	path := writeIndex(t, "Alpha@beta@end Alpha@gamma@end Delta@%path/to/d.html@end")

	out, _, err := execute(t, path, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, `<a href="docs/index/html/index.html#A">A</a>`)
	assert.Contains(t, out, `id="A.Alpha.gamma"`)
	assert.Contains(t, out, `<a href="docs/path/to/d.html">Delta</a>`)
	assert.NotContains(t, out, `style="display:none"`)
}

func TestGenerateCollapsed(t *testing.T) {
	path := writeIndex(t, "Alpha@beta@end")

	out, _, err := execute(t, "--collapsed", path, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, `<div id="div_id2" style="display:none">`)
}

func TestGenerateToFileThenCheck(t *testing.T) {
	path := writeIndex(t, "Foo@^Bar@end Bar@%b.html@end Bar@sub@%s.html@end")
	output := filepath.Join(t.TempDir(), "index.html")

	out, _, err := execute(t, "-o", output, path, "docs")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<a href="docs/index/html/index.html#B.Bar">Foo, see Bar</a>`)

	out, _, err = execute(t, "check", output)
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
}

func TestCheckFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.html")
	frag := `<a class="anchor" id="A"></a><a class="anchor" id="A"></a>`
	require.NoError(t, os.WriteFile(path, []byte(frag), 0o644))

	out, _, err := execute(t, "check", path)
	require.ErrorIs(t, err, errCheckFailed)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, out, `duplicate anchor "A"`)
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"one argument", []string{"index.txt"}},
		{"three arguments", []string{"index.txt", "docs", "extra"}},
		{"unknown flag", []string{"--bogus", "index.txt", "docs"}},
		{"watch without output", []string{"--watch", "index.txt", "docs"}},
		{"check without file", []string{"check"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			var usage *UsageError
			require.ErrorAs(t, err, &usage)
			assert.Equal(t, ExitUsage, ExitCode(err))
		})
	}
}

func TestConflictingLinks(t *testing.T) {
	path := writeIndex(t, "Delta@%a.html@end Delta@%b.html@end")
	output := filepath.Join(t.TempDir(), "index.html")

	out, _, err := execute(t, path, "docs")
	assert.Empty(t, out)
	assert.Equal(t, ExitConflict, ExitCode(err))

	_, _, err = execute(t, "-o", output, path, "docs")
	require.Error(t, err)
	assert.NoFileExists(t, output)
}

func TestStrictCrossRefsFlag(t *testing.T) {
	path := writeIndex(t, "Foo@^Bar@end Foo@^Baz@end")

	_, _, err := execute(t, path, "docs")
	require.NoError(t, err)

	_, _, err = execute(t, "--strict-xrefs", path, "docs")
	assert.Equal(t, ExitConflict, ExitCode(err))
}

func TestMissingInput(t *testing.T) {
	_, _, err := execute(t, filepath.Join(t.TempDir(), "missing.txt"), "docs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading index file")
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestStats(t *testing.T) {
	path := writeIndex(t, "Alpha@beta@end Delta@%d.html@end Foo@^Delta@end")

	out, _, err := execute(t, "stats", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Entries:")
	assert.Contains(t, out, "Links:")
}

func TestConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "docindex.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("collapse_image: icons/toggle.png\nindex_page: glossary.html\n"), 0o644))
	path := writeIndex(t, "Alpha@end")

	out, _, err := execute(t, "--config", cfgPath, path, "site")
	require.NoError(t, err)
	assert.Contains(t, out, `<img src="icons/toggle.png" id="im_id1">`)
	assert.Contains(t, out, `<a href="site/glossary.html#Z">Z</a>`)
}

func TestExitCode(t *testing.T) {
	conflict := &index.ConflictingLinkError{Label: "Delta"}
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"usage", &UsageError{Msg: "bad"}, ExitUsage},
		{"conflict", conflict, ExitConflict},
		{"wrapped conflict", fmt.Errorf("build: %w", conflict), ExitConflict},
		{"other", errors.New("boom"), ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
