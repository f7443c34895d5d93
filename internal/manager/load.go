package manager

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"yieldd/internal/artifact"
	"yieldd/internal/schema"
)

// Load reads the artifact (and metadata side-car, when the revision has one)
// exactly once. A failure is recorded rather than fatal: the manager moves
// to StateError, Warning() describes the problem and predictions are
// refused. Calling Load again after a successful load is a no-op.
func (m *Manager) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	loaded := m.state == StateReady
	m.mu.RUnlock()
	if loaded {
		return nil
	}

	start := time.Now()
	model, err := m.loader(m.artifactPath)
	if err == nil {
		err = model.Compatible(schema.Columns(m.revision))
	}
	if err != nil {
		m.fail(err)
		return ErrModelUnavailable(m.artifactPath, err.Error())
	}

	var md artifact.Metadata
	if m.metadataPath != "" {
		// Metadata is display-only; a bad side-car degrades to placeholders.
		if md, err = artifact.LoadMetadata(m.metadataPath); err != nil {
			m.publish(Event{Name: EventModelLoadFailed, Revision: m.revision.String(), Fields: map[string]any{
				"path":  m.metadataPath,
				"error": err.Error(),
				"fatal": false,
			}})
			md = artifact.Metadata{}
		}
	}

	m.mu.Lock()
	m.model = model
	m.meta = md
	m.state = StateReady
	m.err = ""
	m.loadedAt = time.Now()
	m.mu.Unlock()

	m.publish(Event{Name: EventModelLoaded, Revision: m.revision.String(), Fields: map[string]any{
		"path":     m.artifactPath,
		"model":    model.Name(),
		"features": len(model.Features()),
		"dur_ms":   time.Since(start).Milliseconds(),
	}})
	return nil
}

func (m *Manager) fail(err error) {
	m.mu.Lock()
	m.state = StateError
	m.err = err.Error()
	m.model = nil
	m.mu.Unlock()
	m.publish(Event{Name: EventModelLoadFailed, Revision: m.revision.String(), Fields: map[string]any{
		"path":  m.artifactPath,
		"error": err.Error(),
		"fatal": true,
	}})
}

// Warning returns the text shown in place of predictions when the model is
// unavailable, or "" once it is loaded.
func (m *Manager) Warning() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state == StateReady {
		return ""
	}
	return fmt.Sprintf("Model not loaded. Please check if '%s' exists in the app directory.", filepath.Base(m.artifactPath))
}

// LastError returns the recorded load error, if any.
func (m *Manager) LastError() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}
