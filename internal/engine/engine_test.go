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

const library = "@acme/widgets"

// workspace lays out a library and sibling projects under one root the way a
// real checkout would look.
func workspace(t *testing.T) (root string, cfg *domain.Config) {
	t.Helper()
	root = t.TempDir()

	libRoot := filepath.Join(root, "widgets")
	require.NoError(t, os.MkdirAll(filepath.Join(libRoot, "dist"), domain.DirPerm))

	cfg = &domain.Config{
		LibraryName:    library,
		LibraryRoot:    libRoot,
		DistDir:        filepath.Join(libRoot, "dist"),
		InstallCommand: []string{"npm", "install"},
		SearchRoot:     root,
	}
	return root, cfg
}

func addProject(t *testing.T, root, name, manifestContent string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ManifestFileName), []byte(manifestContent), 0o644))
	return dir
}

func relaxedLogger(t *testing.T, ctrl *gomock.Controller) *mocks.MockLogger {
	t.Helper()
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func TestLocator_Discover(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, cfg := workspace(t)
	cfg.Groups = []domain.CandidateGroup{
		{Label: "storefront", Aliases: []string{"shop", "storefront"}},
		{Label: "admin", Aliases: []string{"admin"}},
		{Label: "docs", Aliases: []string{"docs"}},
	}

	// Both storefront aliases exist and consume the library; only the first
	// may be reported.
	addProject(t, root, "shop", `{"dependencies": {"`+library+`": "^2.1.0"}}`)
	addProject(t, root, "storefront", `{"dependencies": {"`+library+`": "^2.1.0"}}`)

	// Admin exists but does not declare the library.
	addProject(t, root, "admin", `{"dependencies": {"react": "^18.0.0"}}`)

	// Docs has a malformed manifest; treated as no match.
	addProject(t, root, "docs", "{broken")

	locator := engine.NewLocator(manifest.NewStore(), relaxedLogger(t, ctrl))
	projects := locator.Discover(cfg)

	require.Len(t, projects, 1)
	assert.Equal(t, "storefront", projects[0].Label)
	assert.Equal(t, "shop", projects[0].MatchedName)
	assert.Equal(t, filepath.Join(root, "shop"), projects[0].RootPath)
}

func TestLocator_Discover_DevDependencyCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, cfg := workspace(t)
	cfg.Groups = []domain.CandidateGroup{{Label: "tooling", Aliases: []string{"tooling"}}}

	addProject(t, root, "tooling", `{"devDependencies": {"`+library+`": "~2.0.0"}}`)

	locator := engine.NewLocator(manifest.NewStore(), relaxedLogger(t, ctrl))
	projects := locator.Discover(cfg)
	require.Len(t, projects, 1)
}

func TestCapturer_Capture(t *testing.T) {
	root, _ := workspace(t)
	store := manifest.NewStore()
	capturer := engine.NewCapturer(store)

	t.Run("records specifier, section and locks", func(t *testing.T) {
		dir := addProject(t, root, "shop", `{"dependencies": {"`+library+`": "^2.1.0"}}`)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package-lock.json"), []byte(`{"v":3}`), 0o644))

		st, err := capturer.Capture(domain.CandidateProject{RootPath: dir, Label: "storefront"}, library)
		require.NoError(t, err)
		assert.Equal(t, "^2.1.0", st.OriginalSpecifier)
		assert.Equal(t, domain.SectionDependencies, st.OriginalSection)
		assert.False(t, st.WasAlreadyLocal)
		assert.Contains(t, st.Locks, "package-lock.json")
		assert.NotZero(t, st.ManifestDigest)
	})

	t.Run("flags already local references", func(t *testing.T) {
		dir := addProject(t, root, "local", `{"dependencies": {"`+library+`": "file:../widgets/dist"}}`)

		st, err := capturer.Capture(domain.CandidateProject{RootPath: dir, Label: "local"}, library)
		require.NoError(t, err)
		assert.True(t, st.WasAlreadyLocal)
	})

	t.Run("fails when dependency vanished", func(t *testing.T) {
		dir := addProject(t, root, "other", `{"dependencies": {"react": "^18.0.0"}}`)

		_, err := capturer.Capture(domain.CandidateProject{RootPath: dir, Label: "other"}, library)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDependencyNotDeclared)
	})
}

func TestLinkAndRestore_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, cfg := workspace(t)
	store := manifest.NewStore()
	logger := relaxedLogger(t, ctrl)

	installer := mocks.NewMockInstaller(ctrl)
	// Link install carries the local reference; restore install reconciles
	// with the bare command.
	installer.EXPECT().Install(gomock.Any(), cfg.InstallCommand, gomock.Any(), "file:../widgets/dist").Return(nil)
	installer.EXPECT().Install(gomock.Any(), cfg.InstallCommand, gomock.Any(), "").Return(nil)

	original := `{
  "name": "shop",
  "devDependencies": {
    "` + library + `": "^2.1.0",
    "typescript": "^5.0.0"
  }
}
`
	dir := addProject(t, root, "shop", original)
	lockOriginal := `{"lockfileVersion": 3}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package-lock.json"), []byte(lockOriginal), 0o644))

	project := domain.CandidateProject{RootPath: dir, Label: "storefront", MatchedName: "shop"}

	st, err := engine.NewCapturer(store).Capture(project, library)
	require.NoError(t, err)

	require.NoError(t, engine.NewLinker(store, installer, logger).Link(context.Background(), cfg, st))

	linked, err := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	require.NoError(t, err)
	assert.Contains(t, string(linked), `"`+library+`": "file:../widgets/dist"`)
	assert.NotContains(t, string(linked), "^2.1.0")

	// Simulate the install rewriting the lock artifact while linked.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package-lock.json"), []byte(`{"mutated": true}`), 0o644))

	require.NoError(t, engine.NewRestorer(store, installer, logger).Restore(context.Background(), cfg, st))

	restored, err := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	require.NoError(t, err)
	assert.Equal(t, original, string(restored))

	lock, err := os.ReadFile(filepath.Join(dir, "package-lock.json"))
	require.NoError(t, err)
	assert.Equal(t, lockOriginal, string(lock))
}

func TestLinker_AlreadyLocalIsUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, cfg := workspace(t)
	store := manifest.NewStore()

	original := `{
  "dependencies": {
    "` + library + `": "file:../widgets"
  }
}
`
	dir := addProject(t, root, "local", original)
	project := domain.CandidateProject{RootPath: dir, Label: "local", MatchedName: "local"}

	st, err := engine.NewCapturer(store).Capture(project, library)
	require.NoError(t, err)
	require.True(t, st.WasAlreadyLocal)

	// The installer must never be invoked for an already-local project.
	installer := mocks.NewMockInstaller(ctrl)
	logger := relaxedLogger(t, ctrl)

	require.NoError(t, engine.NewLinker(store, installer, logger).Link(context.Background(), cfg, st))
	require.NoError(t, engine.NewRestorer(store, installer, logger).Restore(context.Background(), cfg, st))

	got, err := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	require.NoError(t, err)
	assert.Equal(t, original, string(got))
}

func TestLinker_InstallFailureIsDegradedNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, cfg := workspace(t)
	store := manifest.NewStore()

	dir := addProject(t, root, "shop", `{"dependencies": {"`+library+`": "^2.1.0"}}`)
	project := domain.CandidateProject{RootPath: dir, Label: "storefront", MatchedName: "shop"}

	st, err := engine.NewCapturer(store).Capture(project, library)
	require.NoError(t, err)

	installer := mocks.NewMockInstaller(ctrl)
	installer.EXPECT().Install(gomock.Any(), gomock.Any(), dir, gomock.Not("")).
		Return(domain.ErrInstallFailed)

	err = engine.NewLinker(store, installer, relaxedLogger(t, ctrl)).Link(context.Background(), cfg, st)
	require.Error(t, err)
	assert.True(t, st.InstallDegraded)

	// The manifest was already rewritten, so the state must still restore.
	linked, readErr := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	require.NoError(t, readErr)
	assert.Contains(t, string(linked), "file:")
}

func TestRestorer_ReconcileFailureIsWarnedNotEscalated(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, cfg := workspace(t)
	store := manifest.NewStore()

	original := `{"dependencies": {"` + library + `": "^2.1.0"}}`
	dir := addProject(t, root, "shop", original)
	project := domain.CandidateProject{RootPath: dir, Label: "storefront", MatchedName: "shop"}

	st, err := engine.NewCapturer(store).Capture(project, library)
	require.NoError(t, err)

	linkInstaller := mocks.NewMockInstaller(ctrl)
	linkInstaller.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, engine.NewLinker(store, linkInstaller, relaxedLogger(t, ctrl)).Link(context.Background(), cfg, st))

	logger := mocks.NewMockLogger(ctrl)
	var warnings []string
	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		warnings = append(warnings, msg)
	}).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	restoreInstaller := mocks.NewMockInstaller(ctrl)
	restoreInstaller.EXPECT().Install(gomock.Any(), gomock.Any(), dir, "").Return(domain.ErrInstallFailed)

	// The durable rollback succeeded, so Restore reports success.
	require.NoError(t, engine.NewRestorer(store, restoreInstaller, logger).Restore(context.Background(), cfg, st))

	restored, readErr := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	require.NoError(t, readErr)
	assert.Contains(t, string(restored), `"^2.1.0"`)

	require.NotEmpty(t, warnings)
	recovery := warnings[len(warnings)-1]
	assert.Contains(t, recovery, library)
	assert.Contains(t, recovery, "^2.1.0")
	assert.Contains(t, recovery, "npm install")
}

func TestRestorer_WarnsOnManifestDrift(t *testing.T) {
	ctrl := gomock.NewController(t)
	root, cfg := workspace(t)
	store := manifest.NewStore()

	dir := addProject(t, root, "shop", `{
  "name": "shop",
  "dependencies": {
    "`+library+`": "^2.1.0"
  }
}
`)
	project := domain.CandidateProject{RootPath: dir, Label: "storefront", MatchedName: "shop"}

	st, err := engine.NewCapturer(store).Capture(project, library)
	require.NoError(t, err)

	installer := mocks.NewMockInstaller(ctrl)
	installer.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	require.NoError(t, engine.NewLinker(store, installer, relaxedLogger(t, ctrl)).Link(context.Background(), cfg, st))

	// Edit an unrelated entry while linked.
	require.NoError(t, store.Rewrite(dir, domain.SectionDependencies, "react", "^18.0.0"))

	logger := mocks.NewMockLogger(ctrl)
	drift := false
	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		if msg != "" {
			drift = true
		}
	}).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	require.NoError(t, engine.NewRestorer(store, installer, logger).Restore(context.Background(), cfg, st))
	assert.True(t, drift)

	// The unrelated edit survives; only the library entry is reverted.
	restored, readErr := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	require.NoError(t, readErr)
	assert.Contains(t, string(restored), `"react": "^18.0.0"`)
	assert.Contains(t, string(restored), `"`+library+`": "^2.1.0"`)
}
