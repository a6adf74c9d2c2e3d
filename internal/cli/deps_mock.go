package cli

import (
	"github.com/GuySartorelli/local-dev/internal/config"
	"github.com/GuySartorelli/local-dev/internal/driver"
	"github.com/GuySartorelli/local-dev/internal/executor"
	"github.com/GuySartorelli/local-dev/internal/input"
	"github.com/spf13/afero"
)

// MockRootDetector is a test double for RootDetector
type MockRootDetector struct {
	Root string
	Err  error
}

func (m *MockRootDetector) DetectRoot() (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Root, nil
}

// MockSettingsLoader is a test double for SettingsLoader
type MockSettingsLoader struct {
	Settings  *config.Settings
	LoadErr   error
	LoadCalls []string
}

func (m *MockSettingsLoader) Load(fs afero.Fs, root string) (*config.Settings, error) {
	m.LoadCalls = append(m.LoadCalls, root)
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Settings == nil {
		m.Settings = config.DefaultSettings(root)
	}
	return m.Settings, nil
}

// MockDriverFactory is a test double for DriverFactory
type MockDriverFactory struct {
	Driver driver.Driver
}

func (m *MockDriverFactory) Create(fs afero.Fs, settings *config.Settings) driver.Driver {
	if m.Driver != nil {
		return m.Driver
	}
	// Return a default mock driver if none provided
	return driver.NewMockDriver("apache", settings.SitesAvailableDir(), settings.SitesEnabledDir())
}

// MockDependenciesBuilder helps create mock dependencies for tests
type MockDependenciesBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a new MockDependenciesBuilder with sensible defaults
func NewMockDeps() *MockDependenciesBuilder {
	return &MockDependenciesBuilder{
		deps: &Dependencies{
			RootDetector:   &MockRootDetector{Root: "/opt/localdev"},
			SettingsLoader: &MockSettingsLoader{},
			FileSystem:     afero.NewMemMapFs(),
			Executor:       &executor.MockExecutor{},
			DriverFactory:  &MockDriverFactory{},
			StdinReader:    input.NewStringReader(),
		},
	}
}

// WithRoot sets the detected toolkit root
func (b *MockDependenciesBuilder) WithRoot(root string) *MockDependenciesBuilder {
	b.deps.RootDetector = &MockRootDetector{Root: root}
	return b
}

// WithRootError makes root detection fail
func (b *MockDependenciesBuilder) WithRootError(err error) *MockDependenciesBuilder {
	b.deps.RootDetector = &MockRootDetector{Err: err}
	return b
}

// WithSettings sets the settings returned by the loader
func (b *MockDependenciesBuilder) WithSettings(settings *config.Settings) *MockDependenciesBuilder {
	b.deps.SettingsLoader = &MockSettingsLoader{Settings: settings}
	return b
}

// WithSettingsLoader sets a custom settings loader
func (b *MockDependenciesBuilder) WithSettingsLoader(loader SettingsLoader) *MockDependenciesBuilder {
	b.deps.SettingsLoader = loader
	return b
}

// WithFileSystem sets the filesystem
func (b *MockDependenciesBuilder) WithFileSystem(fs afero.Fs) *MockDependenciesBuilder {
	b.deps.FileSystem = fs
	return b
}

// WithExecutor sets the command executor
func (b *MockDependenciesBuilder) WithExecutor(exec executor.CommandExecutor) *MockDependenciesBuilder {
	b.deps.Executor = exec
	return b
}

// WithDriver sets the driver for the mock
func (b *MockDependenciesBuilder) WithDriver(drv driver.Driver) *MockDependenciesBuilder {
	b.deps.DriverFactory = &MockDriverFactory{Driver: drv}
	return b
}

// WithStdinInput sets the answers read from stdin, one per line
func (b *MockDependenciesBuilder) WithStdinInput(lines ...string) *MockDependenciesBuilder {
	b.deps.StdinReader = input.NewStringReader(lines...)
	return b
}

// Build returns the configured Dependencies
func (b *MockDependenciesBuilder) Build() *Dependencies {
	return b.deps
}

// TestHelper provides utilities for CLI tests
type TestHelper struct {
	T interface {
		Helper()
		Cleanup(func())
	}
	OldDeps    *Dependencies
	MockDriver *driver.MockDriver
	MockExec   *executor.MockExecutor
	Fs         afero.Fs
	Settings   *config.Settings
}

// NewTestHelper installs mock dependencies rooted at root and restores
// the previous ones when the test ends
func NewTestHelper(t interface {
	Helper()
	Cleanup(func())
}, root string) *TestHelper {
	t.Helper()

	settings := config.DefaultSettings(root)
	mockDriver := driver.NewMockDriver("apache", settings.SitesAvailableDir(), settings.SitesEnabledDir())
	mockExec := &executor.MockExecutor{}
	fs := afero.NewMemMapFs()

	helper := &TestHelper{
		T:          t,
		OldDeps:    deps,
		MockDriver: mockDriver,
		MockExec:   mockExec,
		Fs:         fs,
		Settings:   settings,
	}

	deps = NewMockDeps().
		WithRoot(root).
		WithSettings(settings).
		WithFileSystem(fs).
		WithExecutor(mockExec).
		WithDriver(mockDriver).
		Build()

	// Cleanup function to restore original deps
	t.Cleanup(func() {
		deps = helper.OldDeps
	})

	return helper
}

// SetStdinInput sets the stdin answers
func (h *TestHelper) SetStdinInput(lines ...string) {
	deps.StdinReader = input.NewStringReader(lines...)
}

