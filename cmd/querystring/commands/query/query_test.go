package query

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/speakeasy-api/querystring/internal/config"
	"github.com/speakeasy-api/querystring/internal/document"
	"github.com/speakeasy-api/querystring/pointer"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "querystring",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return LoadConfig(cmd, configPath)
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")

	Apply(root)
	return root
}

type execResult struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) execResult {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := newTestRoot()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(t.Context())

	return execResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestEncodeCommand_Success(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"programs.json": `{"Limit": 10, "Genres": ["Science Fiction"], "IsKids": true}`,
		"programs.yaml": "Genres:\n  - News\n  - Kids\nSortOrder: [Descending]\n",
		"a.json":        `{"Name": "A"}`,
		"b.json":        `{"Name": "B", "IsFolder": true}`,
		"matrix.json":   `{"Name": "The Matrix"}`,
		"sessions.json": `[{"DeviceName": "Kitchen"}, {"DeviceName": "Living Room", "PlayState": {"IsPaused": true}}]`,
		"config.yaml":   "type: BaseItemDto\nprefix: item\n",
	})
	path := func(name string) string { return filepath.Join(dir, name) }

	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{
			name:     "form style",
			args:     []string{"encode", "--type", "GetProgramsDto", path("programs.json")},
			expected: "IsKids=true&Limit=10&Genres=Science%20Fiction&EnableTotalRecordCount=true\n",
		},
		{
			name:     "deepObject style from yaml",
			args:     []string{"encode", "-t", "GetProgramsDto", "-p", "filter", path("programs.yaml")},
			expected: "filter[SortOrder][0]=Descending&filter[Genres][0]=News&filter[Genres][1]=Kids&filter[EnableTotalRecordCount]=true\n",
		},
		{
			name:     "several files keep argument order",
			args:     []string{"encode", "-t", "BaseItemDto", "-j", "1", path("b.json"), path("a.json")},
			expected: "Name=B&IsFolder=true\nName=A\n",
		},
		{
			name:     "stdin",
			stdin:    `{"Name": "Piped"}`,
			args:     []string{"encode", "-t", "BaseItemDto", "-"},
			expected: "Name=Piped\n",
		},
		{
			name:     "select",
			args:     []string{"encode", "-t", "SessionInfoDto", "--select", "$[1]", path("sessions.json")},
			expected: "PlayState[IsPaused]=true&DeviceName=Living%20Room\n",
		},
		{
			name:     "legacy select",
			args:     []string{"encode", "-t", "SessionInfoDto", "--select", "$[0]", "--jsonpath", "legacy", path("sessions.json")},
			expected: "DeviceName=Kitchen\n",
		},
		{
			name:     "plus space encoding",
			args:     []string{"encode", "-t", "BaseItemDto", "--space-encoding", "plus", path("matrix.json")},
			expected: "Name=The+Matrix\n",
		},
		{
			name:     "config file",
			args:     []string{"encode", path("a.json"), "--config", path("config.yaml")},
			expected: "item[Name]=A\n",
		},
		{
			name:     "flags override config file",
			args:     []string{"encode", path("a.json"), "--config", path("config.yaml"), "--prefix", "other"},
			expected: "other[Name]=A\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := execute(t, tt.stdin, tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.expected, res.stdout)
			assert.Empty(t, res.stderr)
		})
	}
}

func TestEncodeCommand_Verbose_Success(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.json": `{"Name": "A"}`,
		"b.json": `{"Name": "B", "IsFolder": true}`,
	})

	res := execute(t, "", "encode", "-v", "-t", "BaseItemDto", filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json"))
	require.NoError(t, res.err)
	assert.Equal(t, "Name=A\nName=B&IsFolder=true\n", res.stdout)
	assert.Contains(t, res.stderr, "Encoded 2 document(s) as form into 3 parameter(s) in ")
}

func TestEncodeCommand_Error(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.json":      `{"IsFolder": true}`,
		"bad.json":    `{"Name": 12}`,
		"schema.yaml": "type: object\nrequired: [Name]\n",
		"config.yaml": "spaceEncoding: sometimes\n",
	})
	path := func(name string) string { return filepath.Join(dir, name) }

	tests := []struct {
		name     string
		args     []string
		expected error
		contains string
	}{
		{name: "missing type", args: []string{"encode", path("a.json")}, expected: ErrMissingType},
		{name: "unknown type", args: []string{"encode", "-t", "Nope", path("a.json")}, expected: ErrUnknownType},
		{name: "missing file", args: []string{"encode", "-t", "BaseItemDto", path("missing.json")}, expected: os.ErrNotExist},
		{name: "decode failure", args: []string{"encode", "-t", "BaseItemDto", path("bad.json")}, contains: "bad.json"},
		{name: "schema mismatch", args: []string{"encode", "-t", "BaseItemDto", "--schema", path("schema.yaml"), path("a.json")}, expected: ErrSchemaInvalid},
		{name: "no match", args: []string{"encode", "-t", "BaseItemDto", "--select", "$.Items", path("a.json")}, expected: document.ErrNoMatch},
		{name: "stdin twice", args: []string{"encode", "-t", "BaseItemDto", "-", "-"}, expected: ErrStdinReused},
		{name: "schema and document both on stdin", args: []string{"encode", "-t", "BaseItemDto", "--schema", "-", "-"}, expected: ErrStdinReused},
		{name: "bad space encoding flag", args: []string{"encode", "-t", "BaseItemDto", "--space-encoding", "tilde", path("a.json")}, expected: config.ErrInvalidSpaceEncoding},
		{name: "bad config file", args: []string{"encode", "-t", "BaseItemDto", "--config", path("config.yaml"), path("a.json")}, expected: config.ErrInvalidSpaceEncoding},
		{name: "missing config file", args: []string{"encode", "-t", "BaseItemDto", "--config", path("nope.yaml"), path("a.json")}, expected: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := execute(t, "", tt.args...)
			require.Error(t, res.err)
			if tt.expected != nil {
				assert.ErrorIs(t, res.err, tt.expected)
			}
			if tt.contains != "" {
				assert.Contains(t, res.err.Error(), tt.contains)
			}
			assert.Empty(t, res.stdout)
		})
	}
}

func TestURLCommand_Success(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.json":     `{"Name": "A"}`,
		"empty.json": `{}`,
	})

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "with query",
			args:     []string{"url", "-t", "BaseItemDto", "--base", "http://jellyfin.local:8096", "--path", "/Items", filepath.Join(dir, "a.json")},
			expected: "http://jellyfin.local:8096/Items?Name=A\n",
		},
		{
			name:     "without query",
			args:     []string{"url", "-t", "BaseItemDto", "--base", "http://jellyfin.local:8096", "--path", "/Items", filepath.Join(dir, "empty.json")},
			expected: "http://jellyfin.local:8096/Items\n",
		},
		{
			name:     "deepObject",
			args:     []string{"url", "-t", "BaseItemDto", "-p", "item", "--base", "http://jellyfin.local:8096", filepath.Join(dir, "a.json")},
			expected: "http://jellyfin.local:8096?item[Name]=A\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := execute(t, "", tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.expected, res.stdout)
		})
	}
}

func TestURLCommand_Error(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"a.json": `{"Name": "A"}`})

	res := execute(t, "", "url", "-t", "BaseItemDto", filepath.Join(dir, "a.json"))
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, ErrMissingBaseURL)

	res = execute(t, "", "url", "-t", "BaseItemDto", "--base", "http://x", "a.json", "b.json")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "accepts at most 1 arg(s)")

	res = execute(t, `{"Name": "A"}`, "url", "-t", "BaseItemDto", "--base", "http://x", "--schema", "-", "-")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, ErrStdinReused)
}

func TestTypesCommand_Success(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "types")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	assert.Contains(t, lines, "GetProgramsDto")
	assert.Contains(t, lines, "SessionInfoDto")
	assert.IsNonDecreasing(t, lines)
}

func TestReportSummary_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefix   *string
		results  []result
		elapsed  time.Duration
		expected string
	}{
		{
			name:     "uses thousands separators",
			results:  []result{{Fragments: 1000}, {Fragments: 234}},
			elapsed:  1250 * time.Microsecond,
			expected: "Encoded 2 document(s) as form into 1,234 parameter(s) in 1ms\n",
		},
		{
			name:     "deepObject with minimum duration",
			prefix:   pointer.From("filter"),
			results:  []result{{Fragments: 3}},
			elapsed:  300 * time.Microsecond,
			expected: "Encoded 1 document(s) as deepObject into 3 parameter(s) in 1ms\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			reportSummary(&buf, &config.Config{Prefix: tt.prefix}, tt.results, tt.elapsed)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestCheckStdinOnce_Success(t *testing.T) {
	t.Parallel()

	require.NoError(t, checkStdinOnce("", []string{"a.json", "-", "b.json"}))
	require.NoError(t, checkStdinOnce("", nil))
	require.NoError(t, checkStdinOnce("-", []string{"a.json"}))
	require.NoError(t, checkStdinOnce("schema.yaml", []string{"-"}))
	assert.ErrorIs(t, checkStdinOnce("", []string{"-", "a.json", "-"}), ErrStdinReused)
	assert.ErrorIs(t, checkStdinOnce("-", []string{"a.json", "-"}), ErrStdinReused)
}
