package driver

// Driver is the interface a web server driver implements
type Driver interface {
	// Name returns the driver name
	Name() string

	// WriteConfig writes a site config into the available directory,
	// replacing any previous config for the domain. It returns the path written.
	WriteConfig(domain, configContent string) (string, error)

	// Enable links the site config into the enabled directory.
	// It reports false without touching anything when the link already exists.
	Enable(domain string) (bool, error)

	// IsEnabled checks if a site is linked into the enabled directory
	IsEnabled(domain string) (bool, error)

	// Paths returns the driver's config paths
	Paths() Paths
}

// Paths contains the web server config directory paths
type Paths struct {
	Available string // config available directory
	Enabled   string // config enabled directory
}
