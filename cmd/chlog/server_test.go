package main

import (
	"context"
	"fmt"
	"net"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sosedoff/gitkit"
)

type gitServer struct {
	cfg  gitkit.Config
	dir  string
	svc  *gitkit.Server
	http *httptest.Server
}

func newGitServer(t *testing.T) *gitServer {
	t.Helper()
	dir := t.TempDir()
	cfg := gitkit.Config{
		Dir:        dir,
		AutoCreate: true,
		AutoHooks:  true,
		Hooks: &gitkit.HookScripts{
			PreReceive: `echo "pre-receive"`,
		},
	}
	return &gitServer{
		dir: dir,
		cfg: cfg,
		svc: gitkit.New(cfg),
	}
}

func (g *gitServer) start(t *testing.T) net.Addr {
	t.Helper()
	if err := g.svc.Setup(); err != nil {
		t.Fatal(err)
	}
	g.http = httptest.NewServer(g.svc)
	addr := g.http.Listener.Addr()
	t.Logf("Test git server listening: %s", addr)
	return addr
}

func (g *gitServer) stop(t *testing.T) {
	t.Helper()
	g.http.Close()
}

// Commit links in the report point at the clone's remote, normalized and
// with the .git suffix stripped.
func TestChlogServedRemote(t *testing.T) {
	if testing.Short() {
		t.Skip("-short")
	}
	if runtime.GOOS == "windows" {
		t.Skip("windows not supported (gitkit uses syscall.Kill)")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	srv := newGitServer(t)
	addr := srv.start(t)
	defer srv.stop(t)

	cloneURL := fmt.Sprintf("http://%s/myrepo.git", addr)
	repoPath := filepath.Join(t.TempDir(), "clone")
	call(ctx, t, "", "git", "clone", cloneURL, repoPath)
	call(ctx, t, repoPath, "git", "commit", "--allow-empty", "-m", "feat: serve repositories")

	out := filepath.Join(t.TempDir(), "report.md")
	code := run([]string{"chlog", "-q", "-d", "365", "-o", out, repoPath})
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}

	b, err := os.ReadFile(out)
	die(err)
	doc := string(b)

	if !strings.HasPrefix(doc, "# Project: Myrepo\n") {
		t.Fatalf("unexpected document start:\n%s", doc)
	}
	linkPrefix := fmt.Sprintf("http://%s/myrepo/commit/", addr)
	if !strings.Contains(doc, linkPrefix) {
		t.Errorf("expected commit links starting with %q:\n%s", linkPrefix, doc)
	}
}
