package registry

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIndex_SortsNames(t *testing.T) {
	names, err := DecodeIndex([]byte(`[
		{"name": "sparkles", "type": "registry:ui"},
		{"name": "3d-card"},
		{"name": "Bento-grid"},
		{"name": "animated-modal"}
	]`))
	require.NoError(t, err)

	assert.Equal(t, []string{"3d-card", "Bento-grid", "animated-modal", "sparkles"}, names)
	assert.True(t, sort.StringsAreSorted(names))
}

func TestDecodeIndex_Empty(t *testing.T) {
	names, err := DecodeIndex([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDecodeIndex_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"object instead of array", `{"name": "a"}`},
		{"null", `null`},
		{"missing name", `[{"name": "a"}, {"title": "b"}]`},
		{"null entry", `[null]`},
		{"name not a string", `[{"name": 7}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeIndex([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDecodeDetail(t *testing.T) {
	detail, err := DecodeDetail([]byte(`{
		"dependencies": ["a", "b"],
		"registryDependencies": ["c"],
		"files": [
			{"path": "foo.tsx", "content": "x"},
			{"path": null, "content": "y"},
			{"content": "z"}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, detail.AllDependencies())
	assert.True(t, detail.HasFiles())
	require.Len(t, detail.Files, 3)

	path, content, ok := detail.Files[0].Usable()
	assert.True(t, ok)
	assert.Equal(t, "foo.tsx", path)
	assert.Equal(t, "x", content)

	_, _, ok = detail.Files[1].Usable()
	assert.False(t, ok)
	_, _, ok = detail.Files[2].Usable()
	assert.False(t, ok)
}

func TestDecodeDetail_MissingFields(t *testing.T) {
	detail, err := DecodeDetail([]byte(`{}`))
	require.NoError(t, err)

	assert.Empty(t, detail.AllDependencies())
	assert.False(t, detail.HasFiles())
	assert.Nil(t, detail.Files)

	detail, err = DecodeDetail([]byte(`{"files": []}`))
	require.NoError(t, err)
	assert.False(t, detail.HasFiles())
	assert.NotNil(t, detail.Files)
}

func TestDecodeDetail_Errors(t *testing.T) {
	for _, body := range []string{``, `[]`, `"x"`, `{"files": "nope"}`, `{"dependencies": {}}`, `{broken`} {
		_, err := DecodeDetail([]byte(body))
		assert.Error(t, err, "body %q", body)
	}
}

func TestFileEntry_EmptyStrings(t *testing.T) {
	empty := ""
	val := "v"
	assert.False(t, func() bool { _, _, ok := FileEntry{Path: &empty, Content: &val}.Usable(); return ok }())
	assert.False(t, func() bool { _, _, ok := FileEntry{Path: &val, Content: &empty}.Usable(); return ok }())
}

func TestLoadDetail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "button-demo.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"dependencies":["motion"]}`), 0644))

	detail, err := LoadDetail(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"motion"}, detail.AllDependencies())

	_, err = LoadDetail(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
