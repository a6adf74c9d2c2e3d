package driver

// MockDriver is a test double for Driver interface
type MockDriver struct {
	name  string
	paths Paths

	// Function mocks - set these to customize behavior
	WriteConfigFunc func(domain, configContent string) (string, error)
	EnableFunc      func(domain string) (bool, error)
	IsEnabledFunc   func(domain string) (bool, error)

	// Call tracking - check these to verify interactions
	WriteConfigCalls []WriteConfigCall
	EnableCalls      []string
	IsEnabledCalls   []string
}

// WriteConfigCall records arguments passed to WriteConfig
type WriteConfigCall struct {
	Domain  string
	Content string
}

// NewMockDriver creates a new MockDriver with default no-op implementations
func NewMockDriver(name, availableDir, enabledDir string) *MockDriver {
	return &MockDriver{
		name: name,
		paths: Paths{
			Available: availableDir,
			Enabled:   enabledDir,
		},
		WriteConfigCalls: make([]WriteConfigCall, 0),
		EnableCalls:      make([]string, 0),
		IsEnabledCalls:   make([]string, 0),
	}
}

// Name returns the driver name
func (m *MockDriver) Name() string {
	return m.name
}

// Paths returns the configured paths
func (m *MockDriver) Paths() Paths {
	return m.paths
}

// WriteConfig records the call and invokes the mock function if set
func (m *MockDriver) WriteConfig(domain, configContent string) (string, error) {
	m.WriteConfigCalls = append(m.WriteConfigCalls, WriteConfigCall{Domain: domain, Content: configContent})
	if m.WriteConfigFunc != nil {
		return m.WriteConfigFunc(domain, configContent)
	}
	return m.paths.Available + "/" + domain + ".conf", nil
}

// Enable records the call and invokes the mock function if set
func (m *MockDriver) Enable(domain string) (bool, error) {
	m.EnableCalls = append(m.EnableCalls, domain)
	if m.EnableFunc != nil {
		return m.EnableFunc(domain)
	}
	return true, nil
}

// IsEnabled records the call and invokes the mock function if set
func (m *MockDriver) IsEnabled(domain string) (bool, error) {
	m.IsEnabledCalls = append(m.IsEnabledCalls, domain)
	if m.IsEnabledFunc != nil {
		return m.IsEnabledFunc(domain)
	}
	return false, nil
}

// Reset clears all call tracking
func (m *MockDriver) Reset() {
	m.WriteConfigCalls = make([]WriteConfigCall, 0)
	m.EnableCalls = make([]string, 0)
	m.IsEnabledCalls = make([]string, 0)
}
