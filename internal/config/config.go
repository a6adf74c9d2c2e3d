package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Compiled-in defaults
const (
	DefaultEmail         = "guy.sartorelli+local-dev@silverstripe.com"
	DefaultSiteWebRoot   = "/srv/www"
	DefaultContainerSSL  = "/etc/apache2/ssl"
	DefaultOpenSSLBinary = "openssl"

	serverDir  = "config/apache-2.4"
	setupFile  = "config/localdev.yaml"
	envFile    = ".env"
	webRootDir = "www"
)

// Directory keys, in provisioning order
const (
	DirSitesAvailable = "sites_available"
	DirSitesEnabled   = "sites_enabled"
	DirSSL            = "ssl"
	DirLogsApache     = "logs_apache"
	DirLogsPHP        = "logs_php"
	DirDatabase       = "db"
)

var skeleton = []Dir{
	{Name: DirSitesAvailable, Path: serverDir + "/sites-available"},
	{Name: DirSitesEnabled, Path: serverDir + "/sites-enabled"},
	{Name: DirSSL, Path: serverDir + "/ssl"},
	{Name: DirLogsApache, Path: "persistent/logs/apache"},
	{Name: DirLogsPHP, Path: "persistent/logs/php"},
	{Name: DirDatabase, Path: "persistent/mariadb"},
}

// Dir is a named directory of the toolkit layout
type Dir struct {
	Name string
	Path string
}

// Settings holds every path and default the toolkit needs.
// It is built once at startup and passed to each component; nothing mutates it afterwards.
type Settings struct {
	RootDir         string
	SiteWebRoot     string // web root as seen by the web server
	HostWebRoot     string // host directory linked at <root>/www, recorded by setup
	ContainerSSLDir string // key store as seen by the web server
	DefaultEmail    string
	OpenSSLBinary   string
	TLSDefaults     TLSSubject
	backends        []Backend
}

// SetupFile is the answers persisted by the one-time setup routine
type SetupFile struct {
	WebRoot      string `yaml:"web_root"`
	DefaultEmail string `yaml:"default_email,omitempty"`
}

// overrides are read from the environment (and <root>/.env)
type overrides struct {
	DefaultEmail  string `env:"LOCALDEV_DEFAULT_EMAIL"`
	SiteWebRoot   string `env:"LOCALDEV_SITE_WEB_ROOT"`
	OpenSSLBinary string `env:"LOCALDEV_OPENSSL"`
}

// rootOverride is parsed separately since the root decides where .env lives
type rootOverride struct {
	Root string `env:"LOCALDEV_ROOT"`
}

// DefaultSettings returns the compiled-in settings for a toolkit rooted at root
func DefaultSettings(root string) *Settings {
	return &Settings{
		RootDir:         root,
		SiteWebRoot:     DefaultSiteWebRoot,
		ContainerSSLDir: DefaultContainerSSL,
		DefaultEmail:    DefaultEmail,
		OpenSSLBinary:   DefaultOpenSSLBinary,
		TLSDefaults:     DefaultTLSSubject(),
		backends:        DefaultBackends(),
	}
}

// ResolveRoot returns LOCALDEV_ROOT when set, otherwise detected
func ResolveRoot(detected string) (string, error) {
	var o rootOverride
	if err := env.Parse(&o); err != nil {
		return "", fmt.Errorf("failed to parse environment: %w", err)
	}
	if o.Root != "" {
		return o.Root, nil
	}
	return detected, nil
}

// Load builds Settings for root: compiled defaults, then the setup file,
// then <root>/.env, then the process environment.
func Load(fs afero.Fs, root string) (*Settings, error) {
	s := DefaultSettings(root)

	setup, err := LoadSetup(fs, root)
	if err != nil {
		return nil, err
	}
	if setup != nil {
		s.HostWebRoot = setup.WebRoot
		if setup.DefaultEmail != "" {
			s.DefaultEmail = setup.DefaultEmail
		}
	}

	environ, err := environment(fs, filepath.Join(root, envFile))
	if err != nil {
		return nil, err
	}

	var o overrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if o.DefaultEmail != "" {
		s.DefaultEmail = o.DefaultEmail
	}
	if o.SiteWebRoot != "" {
		s.SiteWebRoot = o.SiteWebRoot
	}
	if o.OpenSSLBinary != "" {
		s.OpenSSLBinary = o.OpenSSLBinary
	}

	return s, nil
}

// environment merges the optional dotenv file under the process environment.
// Variables already set in the process win, as with godotenv.Load.
func environment(fs afero.Fs, path string) (map[string]string, error) {
	environ := make(map[string]string)

	data, err := afero.ReadFile(fs, path)
	switch {
	case err == nil:
		parsed, err := godotenv.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		for k, v := range parsed {
			environ[k] = v
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environ[k] = v
		}
	}
	return environ, nil
}

// LoadSetup reads the setup file. A missing file returns nil, nil.
func LoadSetup(fs afero.Fs, root string) (*SetupFile, error) {
	path := SetupFilePath(root)

	data, err := afero.ReadFile(fs, path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read setup file: %w", err)
	}

	var setup SetupFile
	if err := yaml.Unmarshal(data, &setup); err != nil {
		return nil, fmt.Errorf("failed to parse setup file: %w", err)
	}
	return &setup, nil
}

// SaveSetup writes the setup answers to disk
func SaveSetup(fs afero.Fs, root string, setup *SetupFile) error {
	path := SetupFilePath(root)

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(setup)
	if err != nil {
		return fmt.Errorf("failed to marshal setup file: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write setup file: %w", err)
	}
	return nil
}

// SetupFilePath returns where setup answers are stored
func SetupFilePath(root string) string {
	return filepath.Join(root, setupFile)
}

// Directories returns the directory skeleton with absolute paths, in a stable order
func (s *Settings) Directories() []Dir {
	dirs := make([]Dir, len(skeleton))
	for i, d := range skeleton {
		dirs[i] = Dir{Name: d.Name, Path: filepath.Join(s.RootDir, d.Path)}
	}
	return dirs
}

// Dir returns the absolute path of a named skeleton directory
func (s *Settings) Dir(name string) string {
	for _, d := range skeleton {
		if d.Name == name {
			return filepath.Join(s.RootDir, d.Path)
		}
	}
	return ""
}

// ServerConfigDir returns the Apache config directory
func (s *Settings) ServerConfigDir() string {
	return filepath.Join(s.RootDir, serverDir)
}

// SitesAvailableDir returns the directory holding rendered site configs
func (s *Settings) SitesAvailableDir() string {
	return s.Dir(DirSitesAvailable)
}

// SitesEnabledDir returns the symlink farm directory
func (s *Settings) SitesEnabledDir() string {
	return s.Dir(DirSitesEnabled)
}

// SSLDir returns the host key store where certificates are written
func (s *Settings) SSLDir() string {
	return s.Dir(DirSSL)
}

// WebRootLink returns the path of the web root link; its presence marks a provisioned environment
func (s *Settings) WebRootLink() string {
	return filepath.Join(s.RootDir, webRootDir)
}

// Backends returns a copy of the ordered backend table
func (s *Settings) Backends() []Backend {
	out := make([]Backend, len(s.backends))
	copy(out, s.backends)
	return out
}

// WithBackends returns a copy of s using the given backend table
func (s *Settings) WithBackends(backends []Backend) *Settings {
	c := *s
	c.backends = append([]Backend(nil), backends...)
	return &c
}
