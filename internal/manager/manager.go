package manager

import (
	"sync"
	"sync/atomic"
	"time"

	"yieldd/internal/artifact"
	"yieldd/internal/schema"
)

type Manager struct {
	mu       sync.RWMutex
	state    State
	err      string
	model    Predictor
	meta     artifact.Metadata
	loadedAt time.Time

	revision     schema.Revision
	artifactPath string
	metadataPath string
	loader       LoaderFunc
	pub          EventPublisher

	startTime        time.Time
	predictionsTotal atomic.Uint64
	errorsTotal      atomic.Uint64
}

// New builds a Manager for rev reading the given files. Call Load before
// serving traffic.
func New(rev schema.Revision, artifactPath, metadataPath string) *Manager {
	return NewWithConfig(ManagerConfig{
		Revision:     rev,
		ArtifactPath: artifactPath,
		MetadataPath: metadataPath,
	})
}

// Ready reports whether a model is loaded and predictions are possible.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateReady && m.model != nil
}

// Revision returns the feature schema revision the manager serves.
func (m *Manager) Revision() schema.Revision { return m.revision }

// SetEventPublisher installs a publisher for lifecycle events.
func (m *Manager) SetEventPublisher(p EventPublisher) {
	if p == nil {
		p = noopPublisher{}
	}
	m.mu.Lock()
	m.pub = p
	m.mu.Unlock()
}

func (m *Manager) publish(e Event) {
	m.mu.RLock()
	p := m.pub
	m.mu.RUnlock()
	p.Publish(e)
}
