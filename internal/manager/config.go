package manager

import (
	"time"

	"yieldd/internal/artifact"
	"yieldd/internal/schema"
)

// LoaderFunc decodes the artifact at path.
type LoaderFunc func(path string) (Predictor, error)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	Revision     schema.Revision
	ArtifactPath string
	// MetadataPath is only read for revisions that carry metadata.
	MetadataPath string
	Publisher    EventPublisher
	// Loader overrides artifact decoding; tests inject fakes here.
	Loader LoaderFunc
}

func defaultLoader(path string) (Predictor, error) {
	m, err := artifact.Load(path)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		state:        StateLoading,
		revision:     cfg.Revision,
		artifactPath: cfg.ArtifactPath,
		metadataPath: cfg.MetadataPath,
		loader:       cfg.Loader,
		pub:          cfg.Publisher,
		startTime:    time.Now(),
	}
	if m.revision == "" {
		m.revision = schema.RevisionA
	}
	if m.loader == nil {
		m.loader = defaultLoader
	}
	if m.pub == nil {
		m.pub = noopPublisher{}
	}
	if !m.revision.HasMetadata() {
		m.metadataPath = ""
	}
	return m
}
