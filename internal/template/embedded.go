package template

import (
	"embed"
	"fmt"
)

//go:embed apache/*.tmpl
var apacheTemplates embed.FS

// Template names within a driver directory
const (
	plainTemplate = "vhost.tmpl"
	tlsTemplate   = "vhost_ssl.tmpl"
)

// getTemplateFS returns the embed.FS for the given driver
func getTemplateFS(driverName string) (embed.FS, error) {
	switch driverName {
	case "apache":
		return apacheTemplates, nil
	default:
		return embed.FS{}, fmt.Errorf("unknown driver: %s", driverName)
	}
}
