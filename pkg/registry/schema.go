// pkg/registry/schema.go
package registry

// ComponentSummary is one element of the registry index array.
// Name is a pointer so a missing field is distinguishable from "".
type ComponentSummary struct {
	Name *string `json:"name"`
}

// ComponentDetail is the per-component demo payload. Absent arrays decode
// to nil slices; a present but empty array decodes to a non-nil empty slice.
type ComponentDetail struct {
	Dependencies         []string    `json:"dependencies,omitempty"`
	RegistryDependencies []string    `json:"registryDependencies,omitempty"`
	Files                []FileEntry `json:"files,omitempty"`
}

// FileEntry is one source file inside a demo payload. Either field may be
// missing or null in the remote document.
type FileEntry struct {
	Path    *string `json:"path,omitempty"`
	Content *string `json:"content,omitempty"`
}

// AllDependencies returns dependencies followed by registryDependencies.
func (d *ComponentDetail) AllDependencies() []string {
	all := make([]string, 0, len(d.Dependencies)+len(d.RegistryDependencies))
	all = append(all, d.Dependencies...)
	return append(all, d.RegistryDependencies...)
}

// HasFiles reports whether the files array is present and non-empty.
func (d *ComponentDetail) HasFiles() bool {
	return len(d.Files) > 0
}

// Usable returns path and content when both are present and non-empty.
func (f FileEntry) Usable() (path, content string, ok bool) {
	if f.Path == nil || f.Content == nil || *f.Path == "" || *f.Content == "" {
		return "", "", false
	}
	return *f.Path, *f.Content, true
}
