package workflow

import (
	"context"
	"fmt"

	"github.com/GuySartorelli/local-dev/internal/config"
	"github.com/GuySartorelli/local-dev/internal/driver"
	"github.com/GuySartorelli/local-dev/internal/errors"
	"github.com/GuySartorelli/local-dev/internal/input"
	"github.com/GuySartorelli/local-dev/internal/logger"
	"github.com/GuySartorelli/local-dev/internal/output"
	"github.com/GuySartorelli/local-dev/internal/provision"
	"github.com/GuySartorelli/local-dev/internal/ssl"
	"github.com/GuySartorelli/local-dev/internal/template"
	"github.com/spf13/afero"
)

// AddSiteBanner is printed at the start of an add-site run
const AddSiteBanner = "PHP DEV FARM VIRTUAL HOST CREATION TOOL"

// Reminder is printed when an add-site run finishes
const Reminder = "Add the URL to your hosts file and restart apache."

// CertIssuer generates a certificate and key for a domain
type CertIssuer interface {
	Generate(ctx context.Context, domain string, subject config.TLSSubject) (*ssl.Cert, error)
}

// Result describes a finished (or aborted) add-site run
type Result struct {
	Site         *config.SiteConfig
	DocumentRoot provision.Status
	Cert         *ssl.Cert // nil without TLS
	ConfigPath   string
	Enabled      bool // false when the link already existed
	States       []State
}

// AddSite creates one virtual host interactively
type AddSite struct {
	settings    *config.Settings
	fs          afero.Fs
	collector   *Collector
	provisioner *provision.Provisioner
	driver      driver.Driver
	certs       CertIssuer
}

// NewAddSite wires an add-site run
func NewAddSite(settings *config.Settings, fs afero.Fs, prompter *input.Prompter, drv driver.Driver, certs CertIssuer) *AddSite {
	return &AddSite{
		settings:    settings,
		fs:          fs,
		collector:   NewCollector(prompter, settings),
		provisioner: provision.New(fs),
		driver:      drv,
		certs:       certs,
	}
}

// CheckSetup fails with ErrSetupRequired unless the environment was provisioned
func (a *AddSite) CheckSetup() error {
	link := a.settings.WebRootLink()
	exists, err := afero.Exists(a.fs, link)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, fmt.Sprintf("failed to check %s", link), err)
	}
	if !exists {
		logger.Debug("%s not found", link)
		return errors.Prerequisite(fmt.Sprintf("%s not found. Run 'localdev setup' to provision your environment", link))
	}
	return nil
}

// Run walks the add-site states until Done or the first error.
// The partial result is returned alongside an error.
func (a *AddSite) Run(ctx context.Context) (*Result, error) {
	output.Banner(AddSiteBanner)

	if err := a.CheckSetup(); err != nil {
		return nil, err
	}

	res := &Result{Site: &config.SiteConfig{}}
	state := StateCollectDomainAndEmail

	for {
		res.States = append(res.States, state)
		if state == StateDone {
			break
		}

		if err := ctx.Err(); err != nil {
			return res, err
		}

		logger.Debug("entering state %s", state)
		next, err := a.step(ctx, state, res)
		if err != nil {
			logger.Debug("state %s failed: %v", state, err)
			return res, err
		}

		if separatorAfter[state] {
			output.Separator()
		}
		state = next
	}

	output.Print(Reminder)
	return res, nil
}

func (a *AddSite) step(ctx context.Context, state State, res *Result) (State, error) {
	site := res.Site

	switch state {
	case StateCollectDomainAndEmail:
		if err := a.collector.DomainAndEmail(site); err != nil {
			return state, err
		}
		return StateProvisionDocumentRoot, nil

	case StateProvisionDocumentRoot:
		status, err := a.provisioner.EnsureDir(site.DocumentRoot)
		if err != nil {
			return state, err
		}
		res.DocumentRoot = status
		if status == provision.StatusCreated {
			output.Success("Created %s", site.DocumentRoot)
		} else {
			output.Info("%s already exists, skipping", site.DocumentRoot)
		}
		return StateCollectBackend, nil

	case StateCollectBackend:
		if err := a.collector.Backend(site); err != nil {
			return state, err
		}
		return StateCollectTLSChoice, nil

	case StateCollectTLSChoice:
		enable, err := a.collector.TLSChoice()
		if err != nil {
			return state, err
		}
		if enable {
			return StateCollectTLSSubject, nil
		}
		return StateRenderAndWriteConfig, nil

	case StateCollectTLSSubject:
		if err := a.collector.TLSSubject(site); err != nil {
			return state, err
		}
		return StateGenerateCertificate, nil

	case StateGenerateCertificate:
		cert, err := a.certs.Generate(ctx, site.Domain, *site.TLS)
		if err != nil {
			return state, err
		}
		res.Cert = cert
		output.Success("Certificate written to %s", cert.CertPath)
		return StateRenderAndWriteConfig, nil

	case StateRenderAndWriteConfig:
		content, err := template.RenderSite(site, a.settings)
		if err != nil {
			return state, errors.WrapDomain(errors.ErrCodeInternal, site.Domain, "failed to render config", err)
		}
		path, err := a.driver.WriteConfig(site.Domain, content)
		if err != nil {
			return state, err
		}
		res.ConfigPath = path
		output.Success("Virtual host written to %s", path)
		return StateEnableSymlink, nil

	case StateEnableSymlink:
		created, err := a.driver.Enable(site.Domain)
		if err != nil {
			return state, err
		}
		res.Enabled = created
		if created {
			output.Success("Virtual host enabled")
		} else {
			output.Info("Virtual host already enabled, skipping.")
		}
		return StateDone, nil
	}

	return state, errors.Wrap(errors.ErrCodeInternal, fmt.Sprintf("unknown state %d", state), nil)
}
