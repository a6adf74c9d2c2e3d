// Package template renders Apache virtual host configuration from embedded
// Go templates.
//
// Two templates are embedded with go:embed:
//
//	apache/vhost.tmpl      <VirtualHost *:80> block
//	apache/vhost_ssl.tmpl  <VirtualHost *:443> block
//
// Render is a pure function of its SiteData argument: the same input always
// produces byte-identical output and nothing on disk is read or written
// apart from the embedded templates.
//
// # Rendering
//
//	content, err := template.RenderSite(site, settings)
//
// or, when the data is already assembled:
//
//	content, err := template.Render(template.SiteData{
//	    Domain:       "example.test",
//	    Alias:        "www.example.test",
//	    AdminEmail:   "dev@example.test",
//	    DocumentRoot: "/srv/www/example.test/htdocs/",
//	    ErrorLog:     "example.test.error.log",
//	    AccessLog:    "example.test.access.log",
//	    Backend:      "php-fpm-7.4:9000",
//	})
//
// Both blocks forward .php requests to the backend with ProxyPassMatch.
// When TLS is set the plain block is written first, then the secure block
// referencing SSLCert and SSLKey, so the site answers on both ports.
//
// Values are substituted verbatim. Nothing is escaped or validated.
package template
