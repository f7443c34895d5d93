package e2e

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"yieldd/internal/httpapi"
	"yieldd/internal/manager"
	"yieldd/internal/registry"
	"yieldd/internal/schema"
)

const fixtures = "../artifact/testdata"

// createArtifactDir copies fixtures into a temporary directory under the
// given names (fixture -> destination) and returns the directory path.
func createArtifactDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for src, dst := range files {
		b, err := os.ReadFile(filepath.Join(fixtures, src))
		if err != nil {
			t.Fatalf("read fixture %s: %v", src, err)
		}
		if err := os.WriteFile(filepath.Join(dir, dst), b, 0o644); err != nil {
			t.Fatalf("write %s: %v", dst, err)
		}
	}
	return dir
}

// newServerForDir resolves the revision's files in dir, loads the model and
// serves the full HTTP surface.
func newServerForDir(t *testing.T, dir string, rev schema.Revision) (*httptest.Server, *manager.Manager) {
	t.Helper()
	set, err := registry.Resolve(dir, rev)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	pub := manager.NewMemoryPublisher()
	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Revision:     rev,
		ArtifactPath: set.ModelPath,
		MetadataPath: set.MetadataPath,
		Publisher:    pub,
	})
	_ = mgr.Load(context.Background())
	srv := httptest.NewServer(httpapi.NewMux(mgr))
	t.Cleanup(srv.Close)
	return srv, mgr
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPostJSON(t *testing.T, url string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPostForm(t *testing.T, u string, v url.Values) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, u, strings.NewReader(v.Encode()))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}
