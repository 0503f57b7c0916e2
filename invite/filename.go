package invite

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// defaultFilenamePattern names downloads after the template that produced
// them, e.g. "birthday-invitation.pdf".
const defaultFilenamePattern = "{{.Template}}-invitation"

type filenameData struct {
	Template string
	Kind     string
}

// ArtifactFilename renders the suggested download filename for an
// artifact of the given kind.
func ArtifactFilename(templateID string, kind ArtifactKind) string {
	name, err := renderFilename(defaultFilenamePattern, templateID, kind)
	if err != nil {
		return fmt.Sprintf("%s-invitation.%s", templateID, kind.Ext())
	}
	return name
}

func renderFilename(pattern, templateID string, kind ArtifactKind) (string, error) {
	tmpl, err := template.New("filename").Parse(pattern)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, filenameData{Template: templateID, Kind: string(kind)}); err != nil {
		return "", err
	}

	result := strings.TrimSpace(buf.String())
	if result == "" {
		return "", fmt.Errorf("empty filename")
	}

	ext := kind.Ext()
	if !strings.HasSuffix(strings.ToLower(result), "."+ext) {
		result = result + "." + ext
	}
	return result, nil
}
