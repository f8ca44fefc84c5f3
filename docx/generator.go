package docx

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// JSON renders the catalog as indented JSON.
func JSON() ([]byte, error) {
	return json.MarshalIndent(Catalog(), "", "  ")
}

// Markdown renders the catalog as a markdown reference, one section per
// status code.
func Markdown() string {
	var b strings.Builder

	b.WriteString("# Fault Catalog\n\n")
	for _, e := range Catalog() {
		fmt.Fprintf(&b, "## %d %s\n\n", e.Code, e.Name)
		fmt.Fprintf(&b, "%s\n\n", e.Description)
		if len(e.Headers) > 0 {
			fmt.Fprintf(&b, "Extra headers: %s\n\n", strings.Join(e.Headers, ", "))
		}
	}

	return b.String()
}

// WriteJSON writes the JSON catalog to outputPath, creating parent
// directories as needed.
func WriteJSON(outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}

	data, err := JSON()
	if err != nil {
		return err
	}

	return os.WriteFile(outputPath, data, 0644)
}

// WriteMarkdown writes the markdown catalog to outputPath.
func WriteMarkdown(outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(outputPath, []byte(Markdown()), 0644)
}
