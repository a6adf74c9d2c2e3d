package workflow

import (
	"github.com/GuySartorelli/local-dev/internal/config"
	"github.com/GuySartorelli/local-dev/internal/input"
	"github.com/GuySartorelli/local-dev/internal/output"
)

// Collector asks the operator for the fields of a SiteConfig
type Collector struct {
	prompter *input.Prompter
	settings *config.Settings
}

// NewCollector creates a Collector
func NewCollector(prompter *input.Prompter, settings *config.Settings) *Collector {
	return &Collector{prompter: prompter, settings: settings}
}

// DomainAndEmail fills Domain, AdminEmail and the derived DocumentRoot.
// The domain is not validated.
func (c *Collector) DomainAndEmail(site *config.SiteConfig) error {
	domain, err := c.prompter.Ask(input.Prompt{Label: "Domain name"})
	if err != nil {
		return err
	}
	site.Domain = domain
	site.DocumentRoot = config.DocumentRoot(c.settings.SiteWebRoot, domain)

	email, err := c.prompter.Ask(input.Prompt{Label: "Admin email", Default: c.settings.DefaultEmail})
	if err != nil {
		return err
	}
	site.AdminEmail = email
	return nil
}

// Backend asks for a PHP environment from the settings' table
func (c *Collector) Backend(site *config.SiteConfig) error {
	backends := c.settings.Backends()

	labels := make([]string, len(backends))
	for i, b := range backends {
		labels[i] = b.Address
	}

	idx, err := c.prompter.Choose("Please choose one of the following PHP environments: ", labels)
	if err != nil {
		return err
	}
	site.Backend = backends[idx]
	return nil
}

// TLSChoice asks whether the site should also be served over https
func (c *Collector) TLSChoice() (bool, error) {
	return c.prompter.Confirm("Would you like to enable https for this site")
}

// TLSSubject fills the certificate subject, each field defaulting from settings
func (c *Collector) TLSSubject(site *config.SiteConfig) error {
	output.Print("Please provide the following details to generate your cert. Leave blank to use default.")

	defaults := c.settings.TLSDefaults
	subject := config.TLSSubject{}

	fields := []struct {
		label  string
		def    string
		target *string
	}{
		{"Country", defaults.Country, &subject.Country},
		{"State", defaults.State, &subject.State},
		{"City", defaults.City, &subject.City},
		{"Organization", defaults.Organization, &subject.Organization},
		{"Unit", defaults.Unit, &subject.Unit},
	}

	for _, f := range fields {
		answer, err := c.prompter.Ask(input.Prompt{Label: f.label, Default: f.def})
		if err != nil {
			return err
		}
		*f.target = answer
	}

	site.TLS = &subject
	return nil
}
