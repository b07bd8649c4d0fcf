// internal/scraper/collect-components/writer_test.go
package collectcomponents

import (
	"bytes"
	"errors"
	"testing"

	"ui-registry-scraper/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func file(path, content string) registry.FileEntry {
	return registry.FileEntry{Path: strPtr(path), Content: strPtr(content)}
}

func TestLanguageFor(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"foo.tsx", "tsx"},
		{"components/ui/3d-card.tsx", "tsx"},
		{"lib/utils.ts", "ts"},
		{"styles/globals.css", "css"},
		{"archive.tar.gz", "gz"},
		{"noext", "tsx"},
		{"dir.v2/Makefile", "tsx"},
		{".eslintrc", "tsx"},
		{"config/.env.local", "local"},
		{"trailing.", "tsx"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, LanguageFor(tt.path, "tsx"))
		})
	}
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, "Reference", "Intro text."))
	assert.Equal(t, "# Reference\n\nIntro text.\n\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteHeader(&buf, "Reference", ""))
	assert.Equal(t, "# Reference\n\n", buf.String())
}

func TestWriteSection_Full(t *testing.T) {
	detail := &registry.ComponentDetail{
		Dependencies:         []string{"a", "b"},
		RegistryDependencies: []string{"c"},
		Files: []registry.FileEntry{
			file("foo.tsx", "  export default Foo;  "),
			{Path: strPtr("skipped.tsx")},
			file("noext", "x"),
		},
	}

	var buf bytes.Buffer
	result, err := WriteSection(&buf, "foo", detail, "tsx")

	require.NoError(t, err)
	assert.False(t, result.NoFiles)
	assert.Equal(t, 2, result.FilesWritten)
	assert.Equal(t, "## `foo`\n\n"+
		"### Dependencies\n"+
		"- `a`\n"+
		"- `b`\n"+
		"- `c`\n"+
		"\n"+
		"### Source Files\n"+
		"#### `foo.tsx`\n"+
		"```tsx\n"+
		"export default Foo;\n"+
		"```\n\n"+
		"#### `noext`\n"+
		"```tsx\n"+
		"x\n"+
		"```\n\n"+
		"---\n\n", buf.String())
}

func TestWriteSection_NoDependencies(t *testing.T) {
	detail := &registry.ComponentDetail{Files: []registry.FileEntry{file("a.ts", "1")}}

	var buf bytes.Buffer
	_, err := WriteSection(&buf, "bare", detail, "tsx")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "### Dependencies\n- None\n\n")
}

func TestWriteSection_NoFilesShortCircuits(t *testing.T) {
	for name, files := range map[string][]registry.FileEntry{
		"absent": nil,
		"empty":  {},
	} {
		t.Run(name, func(t *testing.T) {
			detail := &registry.ComponentDetail{Dependencies: []string{"motion"}, Files: files}

			var buf bytes.Buffer
			result, err := WriteSection(&buf, "card", detail, "tsx")

			require.NoError(t, err)
			assert.True(t, result.NoFiles)
			assert.Equal(t, "## `card`\n\n### Dependencies\n- `motion`\n\n", buf.String())
			assert.NotContains(t, buf.String(), "Source Files")
			assert.NotContains(t, buf.String(), "---")
		})
	}
}

func TestWriteSection_AllEntriesUnusable(t *testing.T) {
	detail := &registry.ComponentDetail{
		Files: []registry.FileEntry{{Path: strPtr("a.tsx"), Content: strPtr("")}, {}},
	}

	var buf bytes.Buffer
	result, err := WriteSection(&buf, "ghost", detail, "tsx")

	require.NoError(t, err)
	assert.False(t, result.NoFiles)
	assert.Equal(t, 0, result.FilesWritten)
	assert.Equal(t, "## `ghost`\n\n### Dependencies\n- None\n\n### Source Files\n---\n\n", buf.String())
}

type failingWriter struct {
	remaining int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.remaining <= 0 {
		return 0, errors.New("disk full")
	}
	w.remaining--
	return len(p), nil
}

func TestWriteSection_StopsAtFirstWriteError(t *testing.T) {
	detail := &registry.ComponentDetail{Files: []registry.FileEntry{file("a.tsx", "1"), file("b.tsx", "2")}}
	w := &failingWriter{remaining: 2}

	_, err := WriteSection(w, "x", detail, "tsx")

	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 0, w.remaining)
}
