package manager

import (
	"os"

	"yieldd/internal/artifact"
)

// PreflightCheck is one named startup check.
type PreflightCheck struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Info  string `json:"info,omitempty"`
	Error string `json:"error,omitempty"`
}

// Preflight inspects the configured files without loading them. It does not
// mutate state and is safe to call at any time.
func (m *Manager) Preflight() []PreflightCheck {
	var checks []PreflightCheck
	checks = append(checks, fileCheck("artifact_exists", m.artifactPath, true))
	ext := PreflightCheck{Name: "artifact_format_supported", OK: artifact.SupportedExt(m.artifactPath), Info: m.artifactPath}
	if !ext.OK {
		ext.Error = "expected .json, .yaml, .yml or .toml"
	}
	checks = append(checks, ext)
	if m.metadataPath != "" {
		checks = append(checks, fileCheck("metadata_exists", m.metadataPath, false))
	}
	return checks
}

// fileCheck stats path; a missing optional file is reported but still OK.
func fileCheck(name, path string, required bool) PreflightCheck {
	c := PreflightCheck{Name: name, Info: path}
	if path == "" {
		c.OK = !required
		c.Error = "path not configured"
		return c
	}
	fi, err := os.Stat(path)
	switch {
	case err != nil:
		c.OK = !required
		c.Error = err.Error()
	case fi.IsDir():
		c.Error = "path is a directory"
	default:
		c.OK = true
	}
	return c
}
