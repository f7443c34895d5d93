package registry

import (
	"fmt"
	"path/filepath"

	"yieldd/internal/common/fsutil"
	"yieldd/internal/schema"
)

// Canonical file stems per revision.
const (
	StemRevisionA = "best_model_tuned"
	StemRevisionB = "best_model"
	StemRevisionC = "crop_yield_model"
	MetadataFile  = "model_metadata.json"
)

// alternate encodings tried, in order, after the canonical .json.
var altExts = []string{".yaml", ".yml", ".toml"}

// ArtifactSet names the files a revision reads at startup.
type ArtifactSet struct {
	Revision     schema.Revision
	Dir          string
	ModelPath    string
	MetadataPath string
}

// Stem returns the artifact file name without extension for rev.
func Stem(rev schema.Revision) string {
	switch rev {
	case schema.RevisionB:
		return StemRevisionB
	case schema.RevisionC:
		return StemRevisionC
	default:
		return StemRevisionA
	}
}

// Resolve locates the artifact (and metadata for revision C) in dir. When
// neither the canonical .json nor an alternate encoding exists, ModelPath
// still names the .json file so callers can report what was expected.
func Resolve(dir string, rev schema.Revision) (ArtifactSet, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return ArtifactSet{}, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return ArtifactSet{}, fmt.Errorf("abs path: %w", err)
	}
	stem := Stem(rev)
	set := ArtifactSet{Revision: rev, Dir: abs, ModelPath: filepath.Join(abs, stem+".json")}
	if !fsutil.PathExists(set.ModelPath) {
		for _, ext := range altExts {
			p := filepath.Join(abs, stem+ext)
			if fsutil.PathExists(p) {
				set.ModelPath = p
				break
			}
		}
	}
	if rev.HasMetadata() {
		set.MetadataPath = filepath.Join(abs, MetadataFile)
	}
	return set, nil
}

// LoadDir is Resolve for callers that start from the executable's directory
// when dir is empty.
func LoadDir(dir string, rev schema.Revision) (ArtifactSet, error) {
	if dir == "" {
		exeDir, err := fsutil.ExecutableDir()
		if err != nil {
			return ArtifactSet{}, err
		}
		dir = exeDir
	}
	return Resolve(dir, rev)
}
