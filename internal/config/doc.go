// Package config holds the toolkit settings and the per-run site model.
//
// Settings is the single immutable value carrying every path and default the
// toolkit uses. It is built once at startup and passed explicitly to each
// component:
//
//	detected, _ := platform.DetectRoot()
//	root, _ := config.ResolveRoot(detected)
//	settings, err := config.Load(afero.NewOsFs(), root)
//
// # Sources
//
// Values are layered, later sources winning:
//   - compiled-in defaults (DefaultSettings)
//   - <root>/config/localdev.yaml, written by the setup routine
//   - <root>/.env
//   - the process environment
//
// Example localdev.yaml:
//
//	web_root: /home/guy/www
//	default_email: dev@example.com
//
// Recognised environment variables:
//
//	LOCALDEV_ROOT           toolkit root (see ResolveRoot)
//	LOCALDEV_DEFAULT_EMAIL  admin email used when the prompt is left blank
//	LOCALDEV_SITE_WEB_ROOT  web root as seen by Apache (default /srv/www)
//	LOCALDEV_OPENSSL        openssl binary to run
//
// # Layout
//
// Paths are relative to the toolkit root:
//
//	config/apache-2.4/sites-available/  rendered <domain>.conf files
//	config/apache-2.4/sites-enabled/    symlinks to enabled configs
//	config/apache-2.4/ssl/              <domain>.key / <domain>.crt pairs
//	persistent/logs/apache/
//	persistent/logs/php/
//	persistent/mariadb/
//	www                                 link to the host web root
//
// # Site model
//
// SiteConfig is filled in by the add-site workflow and discarded at the end
// of the run. The backend table is compiled in; changing the available PHP
// runtimes means editing DefaultBackends.
package config
