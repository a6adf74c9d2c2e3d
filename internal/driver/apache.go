package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/GuySartorelli/local-dev/internal/config"
	"github.com/GuySartorelli/local-dev/internal/errors"
	"github.com/GuySartorelli/local-dev/internal/logger"
	"github.com/spf13/afero"
)

// ApacheDriver implements the Driver interface for Apache 2.4
type ApacheDriver struct {
	fs    afero.Fs
	paths Paths
}

// NewApache creates an Apache driver for the settings' sites directories
func NewApache(fs afero.Fs, settings *config.Settings) *ApacheDriver {
	return NewApacheWithPaths(fs, settings.SitesAvailableDir(), settings.SitesEnabledDir())
}

// NewApacheWithPaths creates a new Apache driver with custom paths
func NewApacheWithPaths(fs afero.Fs, available, enabled string) *ApacheDriver {
	return &ApacheDriver{
		fs: fs,
		paths: Paths{
			Available: available,
			Enabled:   enabled,
		},
	}
}

// Name returns the driver name
func (a *ApacheDriver) Name() string {
	return "apache"
}

// Paths returns the config paths
func (a *ApacheDriver) Paths() Paths {
	return a.paths
}

func (a *ApacheDriver) availablePath(domain string) string {
	return filepath.Join(a.paths.Available, config.ConfigFileName(domain))
}

func (a *ApacheDriver) enabledPath(domain string) string {
	return filepath.Join(a.paths.Enabled, config.ConfigFileName(domain))
}

// WriteConfig writes <domain>.conf to sites-available. Last write wins.
func (a *ApacheDriver) WriteConfig(domain, configContent string) (string, error) {
	configPath := a.availablePath(domain)

	if err := a.fs.MkdirAll(a.paths.Available, 0755); err != nil {
		return "", errors.WrapDomain(errors.ErrCodeFilesystem, domain, "failed to create sites-available directory", err)
	}

	if exists, _ := afero.Exists(a.fs, configPath); exists {
		logger.Debug("replacing existing config %s", configPath)
	}

	if err := afero.WriteFile(a.fs, configPath, []byte(configContent), 0644); err != nil {
		return "", errors.WrapDomain(errors.ErrCodeFilesystem, domain, "failed to write config file", err)
	}

	logger.DebugFields("config written", map[string]interface{}{
		"path":  configPath,
		"bytes": len(configContent),
	})
	return configPath, nil
}

// Enable activates a site by symlinking ../sites-available/<domain>.conf.
// An existing entry of the same name, even a dangling link, is left alone.
func (a *ApacheDriver) Enable(domain string) (bool, error) {
	source := a.availablePath(domain)
	target := a.enabledPath(domain)

	enabled, err := a.IsEnabled(domain)
	if err != nil {
		return false, err
	}
	if enabled {
		return false, nil
	}

	if _, err := a.fs.Stat(source); os.IsNotExist(err) {
		return false, errors.WrapDomain(errors.ErrCodeFilesystem, domain, "config not found in sites-available", err)
	}

	linker, ok := a.fs.(afero.Linker)
	if !ok {
		return false, errors.ErrSymlinkUnsupported
	}

	if err := a.fs.MkdirAll(a.paths.Enabled, 0755); err != nil {
		return false, errors.WrapDomain(errors.ErrCodeFilesystem, domain, "failed to create sites-enabled directory", err)
	}

	rel, err := filepath.Rel(a.paths.Enabled, source)
	if err != nil {
		rel = source
	}

	if err := linker.SymlinkIfPossible(rel, target); err != nil {
		return false, errors.WrapDomain(errors.ErrCodeFilesystem, domain, "failed to enable site", err)
	}

	logger.Debug("linked %s -> %s", target, rel)
	return true, nil
}

// IsEnabled checks whether an entry named <domain>.conf exists in sites-enabled
func (a *ApacheDriver) IsEnabled(domain string) (bool, error) {
	target := a.enabledPath(domain)

	var err error
	if lstater, ok := a.fs.(afero.Lstater); ok {
		_, _, err = lstater.LstatIfPossible(target)
	} else {
		_, err = a.fs.Stat(target)
	}

	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check site status: %w", err)
	}
	return true, nil
}
