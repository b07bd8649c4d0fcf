// internal/scraper/collect-components/writer.go
package collectcomponents

import (
	"fmt"
	"io"
	"path"
	"strings"

	"ui-registry-scraper/pkg/registry"
)

// SectionResult describes what WriteSection emitted.
type SectionResult struct {
	// NoFiles is set when the files array was absent or empty and the
	// section stopped after the Dependencies list.
	NoFiles      bool
	FilesWritten int
}

// errWriter keeps the first write error and ignores later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

// WriteHeader writes the document title and intro paragraph.
func WriteHeader(w io.Writer, title, intro string) error {
	ew := &errWriter{w: w}
	ew.printf("# %s\n\n", title)
	if intro != "" {
		ew.printf("%s\n\n", intro)
	}
	return ew.err
}

// WriteSection writes one component section. When the payload has no
// files the section ends after the Dependencies list, without a Source
// Files heading or trailing rule.
func WriteSection(w io.Writer, name string, detail *registry.ComponentDetail, fallbackLanguage string) (SectionResult, error) {
	ew := &errWriter{w: w}
	var result SectionResult

	ew.printf("## `%s`\n\n", name)

	ew.write("### Dependencies\n")
	deps := detail.AllDependencies()
	if len(deps) == 0 {
		ew.write("- None\n")
	}
	for _, dep := range deps {
		ew.printf("- `%s`\n", dep)
	}
	ew.write("\n")

	if !detail.HasFiles() {
		result.NoFiles = true
		return result, ew.err
	}

	ew.write("### Source Files\n")
	for _, file := range detail.Files {
		filePath, content, ok := file.Usable()
		if !ok {
			continue
		}
		ew.printf("#### `%s`\n", filePath)
		ew.printf("```%s\n", LanguageFor(filePath, fallbackLanguage))
		ew.write(strings.TrimSpace(content) + "\n")
		ew.write("```\n\n")
		if ew.err == nil {
			result.FilesWritten++
		}
	}

	ew.write("---\n\n")
	return result, ew.err
}

// LanguageFor derives a fence language tag from the file extension of the
// last path segment. Leading dots of the segment do not start an extension.
func LanguageFor(filePath, fallback string) string {
	base := strings.TrimLeft(path.Base(filePath), ".")
	lang := strings.TrimPrefix(path.Ext(base), ".")
	if lang == "" {
		return fallback
	}
	return lang
}
