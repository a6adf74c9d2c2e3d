package workflow

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/GuySartorelli/local-dev/internal/config"
	"github.com/GuySartorelli/local-dev/internal/errors"
	"github.com/GuySartorelli/local-dev/internal/input"
	"github.com/GuySartorelli/local-dev/internal/provision"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSetup(t *testing.T, fs afero.Fs, settings *config.Settings, answers ...string) (*SetupResult, error) {
	t.Helper()
	prompter := input.NewPrompter(input.NewStringReader(answers...))
	return NewSetup(settings, fs, prompter).Run(context.Background())
}

func TestSetup(t *testing.T) {
	out := captureOutput(t)
	root := t.TempDir()
	webRoot := filepath.Join(t.TempDir(), "sites")
	require.NoError(t, os.MkdirAll(webRoot, 0755))

	settings := config.DefaultSettings(root)
	fs := afero.NewOsFs()

	res, err := runSetup(t, fs, settings, webRoot+"/\n", "dev@example.test\n")
	require.NoError(t, err)

	assert.Equal(t, webRoot, res.WebRoot, "trailing slash is dropped")
	assert.True(t, res.LinkCreated)
	require.Len(t, res.Dirs, 6)
	for i, d := range settings.Directories() {
		assert.Equal(t, d.Path, res.Dirs[i].Path)
		assert.Equal(t, provision.StatusCreated, res.Dirs[i].Status)
		assert.DirExists(t, d.Path)
	}

	target, err := os.Readlink(settings.WebRootLink())
	require.NoError(t, err)
	assert.Equal(t, webRoot, target)

	saved, err := config.LoadSetup(fs, root)
	require.NoError(t, err)
	assert.Equal(t, webRoot, saved.WebRoot)
	assert.Equal(t, "dev@example.test", saved.DefaultEmail)
	assert.Equal(t, config.SetupFilePath(root), res.SetupFile)

	assert.Contains(t, out.String(), SetupBanner)
	assert.Contains(t, out.String(), "Created symlink to "+webRoot)
	assert.Contains(t, out.String(), "Setup complete. Run "+root+"/start.sh to start environment.")

	// Loading afterwards picks up the saved answers
	loaded, err := config.Load(fs, root)
	require.NoError(t, err)
	assert.Equal(t, "dev@example.test", loaded.DefaultEmail)
	assert.Equal(t, webRoot, loaded.HostWebRoot)
}

func TestSetupIsIdempotent(t *testing.T) {
	out := captureOutput(t)
	root := t.TempDir()
	webRoot := t.TempDir()
	settings := config.DefaultSettings(root)
	fs := afero.NewOsFs()

	_, err := runSetup(t, fs, settings, webRoot+"\n", "\n")
	require.NoError(t, err)

	// Second run with a different web root keeps the existing link
	other := t.TempDir()
	res, err := runSetup(t, fs, settings, other+"\n", "\n")
	require.NoError(t, err)

	assert.False(t, res.LinkCreated)
	for _, d := range res.Dirs {
		assert.Equal(t, provision.StatusSkipped, d.Status)
	}
	target, err := os.Readlink(settings.WebRootLink())
	require.NoError(t, err)
	assert.Equal(t, webRoot, target)
	assert.Contains(t, out.String(), "Skipped "+settings.WebRootLink()+" already exists")
}

func TestSetupDefaultsFromSettings(t *testing.T) {
	captureOutput(t)
	root := t.TempDir()
	webRoot := t.TempDir()
	settings := config.DefaultSettings(root)
	settings.HostWebRoot = webRoot

	res, err := runSetup(t, afero.NewOsFs(), settings, "\n", "\n")
	require.NoError(t, err)
	assert.Equal(t, webRoot, res.WebRoot)

	saved, err := config.LoadSetup(afero.NewOsFs(), root)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultEmail, saved.DefaultEmail)
}

func TestSetupRequiresWebRoot(t *testing.T) {
	out := captureOutput(t)
	root := t.TempDir()
	webRoot := t.TempDir()

	res, err := runSetup(t, afero.NewOsFs(), config.DefaultSettings(root), "\n", webRoot+"\n", "\n")
	require.NoError(t, err)
	assert.Equal(t, webRoot, res.WebRoot)
	assert.Contains(t, out.String(), "web root cannot be empty")
}

func TestSetupWithoutSymlinkSupport(t *testing.T) {
	captureOutput(t)
	fs := afero.NewMemMapFs()
	settings := config.DefaultSettings("/opt/localdev")

	res, err := runSetup(t, fs, settings, "/home/dev/www\n", "\n")
	assert.ErrorIs(t, err, errors.ErrSymlinkUnsupported)
	require.NotNil(t, res)
	assert.Len(t, res.Dirs, 6, "directories are created before linking")

	_, err = config.LoadSetup(fs, "/opt/localdev")
	require.NoError(t, err)
}

func TestSetupDirectoryFailure(t *testing.T) {
	captureOutput(t)
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	res, err := runSetup(t, fs, config.DefaultSettings("/opt/localdev"), "/home/dev/www\n", "\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.SiteError{Code: errors.ErrCodeFilesystem})
	assert.Empty(t, res.Dirs)
}

func TestSetupInputClosed(t *testing.T) {
	captureOutput(t)
	fs := afero.NewMemMapFs()

	_, err := runSetup(t, fs, config.DefaultSettings("/opt/localdev"), "\n")
	assert.ErrorIs(t, err, errors.ErrInputClosed)

	exists, _ := afero.DirExists(fs, "/opt/localdev/config")
	assert.False(t, exists, "nothing is created before all answers are in")
}

func TestTrimTrailingSlash(t *testing.T) {
	assert.Equal(t, "/srv/www", trimTrailingSlash("/srv/www/"))
	assert.Equal(t, "/srv/www", trimTrailingSlash("/srv/www//"))
	assert.Equal(t, "/", trimTrailingSlash("/"))
	assert.Equal(t, "relative", trimTrailingSlash("relative"))
}
