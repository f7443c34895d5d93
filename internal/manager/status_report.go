package manager

import (
	"time"

	"yieldd/internal/artifact"
	"yieldd/internal/schema"
	"yieldd/pkg/types"
)

// Snapshot returns a read-only view of the manager state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{State: m.state, Err: m.err, LoadedAt: m.loadedAt}
}

// Caption returns the model description shown under the form. Revisions
// without metadata use a fixed caption; otherwise missing fields fall back
// to placeholders.
func (m *Manager) Caption() string {
	if !m.revision.HasMetadata() {
		return artifact.DefaultCaption
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.meta.Caption()
}

// Info describes the loaded model for display and the API.
func (m *Manager) Info() types.ModelInfo {
	caption := m.Caption()
	warning := m.Warning()
	m.mu.RLock()
	defer m.mu.RUnlock()
	info := types.ModelInfo{
		Loaded:       m.model != nil,
		Revision:     m.revision.String(),
		ArtifactPath: m.artifactPath,
		Name:         m.meta.DisplayName(),
		RMSE:         m.meta.DisplayRMSE(),
		R2:           m.meta.DisplayR2(),
		Caption:      caption,
		Columns:      schema.Columns(m.revision),
		Warning:      warning,
	}
	if m.model != nil {
		if n := m.model.Name(); n != "" && m.meta.ModelName == "" {
			info.Name = n
		}
		info.Target = m.model.Target()
	}
	return info
}

// Status builds a detailed status response for /status.
func (m *Manager) Status() types.StatusResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := time.Now()
	resp := types.StatusResponse{
		State:                 string(m.state),
		Revision:              m.revision.String(),
		ArtifactPath:          m.artifactPath,
		MetadataPath:          m.metadataPath,
		Error:                 m.err,
		PredictionsTotal:      m.predictionsTotal.Load(),
		PredictionErrorsTotal: m.errorsTotal.Load(),
		UptimeSeconds:         int64(now.Sub(m.startTime).Seconds()),
		ServerTimeUnix:        now.Unix(),
	}
	if !m.loadedAt.IsZero() {
		resp.LoadedAtUnix = m.loadedAt.Unix()
	}
	return resp
}
