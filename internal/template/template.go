package template

import (
	"bytes"
	"fmt"
	"path"
	"text/template"

	"github.com/GuySartorelli/local-dev/internal/config"
)

// DriverName is the web server whose virtual-host grammar the templates target
const DriverName = "apache"

// SiteData is everything a virtual host template needs
type SiteData struct {
	Domain       string
	Alias        string
	AdminEmail   string
	DocumentRoot string
	ErrorLog     string
	AccessLog    string
	Backend      string // host:port of the PHP runtime
	TLS          bool
	SSLCert      string // certificate path as seen by the web server
	SSLKey       string // key path as seen by the web server
}

// FromSite builds SiteData for a collected site.
// Certificate paths point into the web server's key store, not the host's.
func FromSite(site *config.SiteConfig, settings *config.Settings) SiteData {
	data := SiteData{
		Domain:       site.Domain,
		Alias:        site.ServerAlias(),
		AdminEmail:   site.AdminEmail,
		DocumentRoot: site.DocumentRoot,
		ErrorLog:     site.ErrorLog(),
		AccessLog:    site.AccessLog(),
		Backend:      site.Backend.Address,
	}
	if site.TLSEnabled() {
		data.TLS = true
		data.SSLCert = path.Join(settings.ContainerSSLDir, site.Domain+".crt")
		data.SSLKey = path.Join(settings.ContainerSSLDir, site.Domain+".key")
	}
	return data
}

// Render returns the virtual host configuration for data.
// With TLS the plain block comes first, followed by the secure block.
func Render(data SiteData) (string, error) {
	if data.TLS && (data.SSLCert == "" || data.SSLKey == "") {
		return "", fmt.Errorf("TLS virtual host for %s requires certificate and key paths", data.Domain)
	}

	names := []string{plainTemplate}
	if data.TLS {
		names = append(names, tlsTemplate)
	}

	var buf bytes.Buffer
	for _, name := range names {
		block, err := renderBlock(DriverName, name, data)
		if err != nil {
			return "", err
		}
		buf.WriteString("\n")
		buf.WriteString(block)
		buf.WriteString("\n")
	}

	return buf.String(), nil
}

// RenderSite is FromSite followed by Render
func RenderSite(site *config.SiteConfig, settings *config.Settings) (string, error) {
	return Render(FromSite(site, settings))
}

func renderBlock(driverName, name string, data SiteData) (string, error) {
	fs, err := getTemplateFS(driverName)
	if err != nil {
		return "", err
	}

	content, err := fs.ReadFile(path.Join(driverName, name))
	if err != nil {
		return "", fmt.Errorf("template not found: %s/%s", driverName, name)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}
