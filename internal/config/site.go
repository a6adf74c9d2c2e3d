package config

import (
	"fmt"
	"strings"
)

// Log file suffixes appended to the domain
const (
	ErrorLogSuffix  = ".error.log"
	AccessLogSuffix = ".access.log"
)

// Backend is a PHP runtime endpoint the site forwards .php requests to
type Backend struct {
	Label   string
	Address string // host:port
}

// DefaultBackends returns the compiled-in backend table in menu order
func DefaultBackends() []Backend {
	return []Backend{
		{Label: "Hip Hop Virtual Machine", Address: "hhvm:9000"},
		{Label: "PHP FPM 7.3", Address: "php-fpm-7.3:9000"},
		{Label: "PHP FPM 7.4", Address: "php-fpm-7.4:9000"},
		{Label: "PHP FPM 8.0", Address: "php-fpm-8.0:9000"},
	}
}

// TLSSubject holds the certificate subject fields
type TLSSubject struct {
	Country      string
	State        string
	City         string
	Organization string
	Unit         string
}

// DefaultTLSSubject returns the subject used for fields left blank
func DefaultTLSSubject() TLSSubject {
	return TLSSubject{
		Country:      "NZ",
		State:        "Wellington",
		City:         "Wellington",
		Organization: "Silverstripe",
		Unit:         "Development",
	}
}

// Subject formats the subject for openssl -subj with cn as the common name
func (t TLSSubject) Subject(cn string) string {
	return fmt.Sprintf("/C=%s/ST=%s/L=%s/O=%s/OU=%s/CN=%s",
		t.Country, t.State, t.City, t.Organization, t.Unit, cn)
}

// SiteConfig is one provisioning run's answers. It is never persisted.
type SiteConfig struct {
	Domain       string
	AdminEmail   string
	DocumentRoot string
	Backend      Backend
	TLS          *TLSSubject // nil unless TLS was requested
}

// TLSEnabled reports whether the site gets a secure virtual host
func (c *SiteConfig) TLSEnabled() bool {
	return c.TLS != nil
}

// ServerAlias returns the www. alias of the domain
func (c *SiteConfig) ServerAlias() string {
	return "www." + c.Domain
}

// ConfigFileName returns the name used in sites-available and sites-enabled
func (c *SiteConfig) ConfigFileName() string {
	return ConfigFileName(c.Domain)
}

// ErrorLog returns the error log file name
func (c *SiteConfig) ErrorLog() string {
	return c.Domain + ErrorLogSuffix
}

// AccessLog returns the access log file name
func (c *SiteConfig) AccessLog() string {
	return c.Domain + AccessLogSuffix
}

// ConfigFileName returns <domain>.conf
func ConfigFileName(domain string) string {
	return domain + ".conf"
}

// DocumentRoot returns <webRoot>/<domain>/htdocs/ with exactly one slash after webRoot
func DocumentRoot(webRoot, domain string) string {
	return strings.TrimRight(webRoot, "/") + "/" + domain + "/htdocs/"
}
