package cli

import (
	"github.com/GuySartorelli/local-dev/internal/config"
	"github.com/GuySartorelli/local-dev/internal/driver"
	"github.com/GuySartorelli/local-dev/internal/executor"
	"github.com/GuySartorelli/local-dev/internal/input"
	"github.com/GuySartorelli/local-dev/internal/platform"
	"github.com/spf13/afero"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	RootDetector   RootDetector
	SettingsLoader SettingsLoader
	FileSystem     afero.Fs
	Executor       executor.CommandExecutor
	DriverFactory  DriverFactory
	StdinReader    StdinReader
}

// RootDetector finds the toolkit root
type RootDetector interface {
	DetectRoot() (string, error)
}

// SettingsLoader builds the settings for a toolkit root
type SettingsLoader interface {
	Load(fs afero.Fs, root string) (*config.Settings, error)
}

// DriverFactory creates the web server driver
type DriverFactory interface {
	Create(fs afero.Fs, settings *config.Settings) driver.Driver
}

// StdinReader reads from stdin
type StdinReader interface {
	ReadString(delim byte) (string, error)
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	RootDetector:   &realRootDetector{},
	SettingsLoader: &realSettingsLoader{},
	FileSystem:     afero.NewOsFs(),
	Executor:       executor.NewSystemExecutor(),
	DriverFactory:  &realDriverFactory{},
	StdinReader:    input.NewStdinReader(),
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

// Real implementations that delegate to existing functions

type realRootDetector struct{}

func (r *realRootDetector) DetectRoot() (string, error) {
	detected, err := platform.DetectRoot()
	if err != nil {
		return "", err
	}
	return config.ResolveRoot(detected)
}

type realSettingsLoader struct{}

func (r *realSettingsLoader) Load(fs afero.Fs, root string) (*config.Settings, error) {
	return config.Load(fs, root)
}

type realDriverFactory struct{}

func (r *realDriverFactory) Create(fs afero.Fs, settings *config.Settings) driver.Driver {
	return driver.NewApache(fs, settings)
}
