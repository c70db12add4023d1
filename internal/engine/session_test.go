package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tether/internal/adapters/manifest"
	"go.trai.ch/tether/internal/core/domain"
	"go.trai.ch/tether/internal/core/ports/mocks"
	"go.trai.ch/tether/internal/engine"
	"go.uber.org/mock/gomock"
)

func TestSession_Cleanup_RestoresAllTrackedProjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, cfg := workspace(t)
	store := manifest.NewStore()
	logger := relaxedLogger(t, ctrl)

	installer := mocks.NewMockInstaller(ctrl)
	installer.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	capturer := engine.NewCapturer(store)
	linker := engine.NewLinker(store, installer, logger)
	session := engine.NewSession(engine.NewRestorer(store, installer, logger), logger)

	originals := make(map[string]string)
	for _, name := range []string{"shop", "admin", "docs"} {
		content := `{"dependencies": {"` + library + `": "^2.1.0"}}`
		dir := addProject(t, root, name, content)
		originals[dir] = content

		st, err := capturer.Capture(domain.CandidateProject{RootPath: dir, Label: name, MatchedName: name}, library)
		require.NoError(t, err)
		session.Track(st)
		require.NoError(t, linker.Link(context.Background(), cfg, st))
	}

	session.Cleanup(context.Background(), cfg)

	for dir := range originals {
		got, err := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
		require.NoError(t, err)
		assert.Contains(t, string(got), `"^2.1.0"`)
		assert.NotContains(t, string(got), "file:")
	}
}

func TestSession_Cleanup_RunsExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, cfg := workspace(t)
	store := manifest.NewStore()
	logger := relaxedLogger(t, ctrl)

	dir := addProject(t, root, "shop", `{"dependencies": {"`+library+`": "^2.1.0"}}`)

	st, err := engine.NewCapturer(store).Capture(domain.CandidateProject{RootPath: dir, Label: "shop", MatchedName: "shop"}, library)
	require.NoError(t, err)

	installer := mocks.NewMockInstaller(ctrl)
	installer.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, engine.NewLinker(store, installer, logger).Link(context.Background(), cfg, st))

	// Both termination triggers land on Cleanup; the reconcile install may
	// only happen once.
	restoreInstaller := mocks.NewMockInstaller(ctrl)
	restoreInstaller.EXPECT().Install(gomock.Any(), gomock.Any(), dir, "").Return(nil).Times(1)

	session := engine.NewSession(engine.NewRestorer(store, restoreInstaller, logger), logger)
	session.Track(st)

	session.Cleanup(context.Background(), cfg)
	session.Cleanup(context.Background(), cfg)
}

func TestSession_Cleanup_OneFailureDoesNotStopOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, cfg := workspace(t)
	store := manifest.NewStore()
	logger := relaxedLogger(t, ctrl)

	installer := mocks.NewMockInstaller(ctrl)
	installer.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	capturer := engine.NewCapturer(store)
	linker := engine.NewLinker(store, installer, logger)
	session := engine.NewSession(engine.NewRestorer(store, installer, logger), logger)

	var dirs []string
	for _, name := range []string{"first", "second", "third"} {
		dir := addProject(t, root, name, `{"dependencies": {"`+library+`": "^2.1.0"}}`)
		dirs = append(dirs, dir)

		st, err := capturer.Capture(domain.CandidateProject{RootPath: dir, Label: name, MatchedName: name}, library)
		require.NoError(t, err)
		session.Track(st)
		require.NoError(t, linker.Link(context.Background(), cfg, st))
	}

	// Break the second project's manifest so its restore rewrite fails.
	require.NoError(t, os.Remove(filepath.Join(dirs[1], domain.ManifestFileName)))

	session.Cleanup(context.Background(), cfg)

	for i, dir := range dirs {
		if i == 1 {
			continue
		}
		got, err := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
		require.NoError(t, err)
		assert.Contains(t, string(got), `"^2.1.0"`, "project %d must be restored despite the failure", i)
	}
}

func TestSession_Cleanup_ReconcileFailureStillRestoresFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, cfg := workspace(t)
	store := manifest.NewStore()
	logger := relaxedLogger(t, ctrl)

	linkInstaller := mocks.NewMockInstaller(ctrl)
	linkInstaller.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Not("")).Return(nil).Times(3)

	capturer := engine.NewCapturer(store)
	linker := engine.NewLinker(store, linkInstaller, logger)

	var dirs []string
	states := make([]*domain.LinkState, 0, 3)
	for _, name := range []string{"first", "second", "third"} {
		dir := addProject(t, root, name, `{"dependencies": {"`+library+`": "^2.1.0"}}`)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pnpm-lock.yaml"), []byte("lockfileVersion: 9\n"), 0o644))
		dirs = append(dirs, dir)

		st, err := capturer.Capture(domain.CandidateProject{RootPath: dir, Label: name, MatchedName: name}, library)
		require.NoError(t, err)
		states = append(states, st)
		require.NoError(t, linker.Link(context.Background(), cfg, st))
	}

	// The second project's reconcile install fails; its manifest and lock
	// must be restored anyway and the others must be unaffected.
	restoreInstaller := mocks.NewMockInstaller(ctrl)
	restoreInstaller.EXPECT().Install(gomock.Any(), gomock.Any(), dirs[0], "").Return(nil)
	restoreInstaller.EXPECT().Install(gomock.Any(), gomock.Any(), dirs[1], "").Return(domain.ErrInstallFailed)
	restoreInstaller.EXPECT().Install(gomock.Any(), gomock.Any(), dirs[2], "").Return(nil)

	session := engine.NewSession(engine.NewRestorer(store, restoreInstaller, logger), logger)
	for _, st := range states {
		session.Track(st)
	}

	session.Cleanup(context.Background(), cfg)

	for _, dir := range dirs {
		got, err := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
		require.NoError(t, err)
		assert.Contains(t, string(got), `"^2.1.0"`)

		lock, err := os.ReadFile(filepath.Join(dir, "pnpm-lock.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "lockfileVersion: 9\n", string(lock))
	}
}

func TestSession_Cleanup_SkipsAlreadyLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, cfg := workspace(t)
	store := manifest.NewStore()
	logger := relaxedLogger(t, ctrl)

	original := `{"dependencies": {"` + library + `": "link:../widgets"}}`
	dir := addProject(t, root, "local", original)

	st, err := engine.NewCapturer(store).Capture(domain.CandidateProject{RootPath: dir, Label: "local", MatchedName: "local"}, library)
	require.NoError(t, err)

	// No restorer interaction expected at all.
	installer := mocks.NewMockInstaller(ctrl)

	session := engine.NewSession(engine.NewRestorer(store, installer, logger), logger)
	session.Track(st)
	session.Cleanup(context.Background(), cfg)

	got, readErr := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	require.NoError(t, readErr)
	assert.Equal(t, original, string(got))
}
