package workflow

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/GuySartorelli/local-dev/internal/config"
	"github.com/GuySartorelli/local-dev/internal/errors"
	"github.com/GuySartorelli/local-dev/internal/input"
	"github.com/GuySartorelli/local-dev/internal/logger"
	"github.com/GuySartorelli/local-dev/internal/output"
	"github.com/GuySartorelli/local-dev/internal/provision"
	"github.com/spf13/afero"
)

// SetupBanner is printed at the start of the setup routine
const SetupBanner = "PHP DEV FARM SETUP TOOL"

const setupIntro = `This routine will guide you through the setup of your local dev environment.
You will only have to complete this process once.

Web root
---------------------
Where you place your web root is up to you. Setup links it to %[1]s
so the tooling can find it. The Apache container mounts it at '%[2]s'.

MariaDB data
---------------------
For MariaDB to persist data a directory from the host is mounted into the
db container. Existing data from '/var/lib/mysql' can be moved into
'%[3]s' after setup completes.

Virtualhosts
---------------------
Apache config lives in '%[4]s'. Use 'localdev add-site' to create
virtual hosts for your sites.
`

// SetupResult describes what the setup routine did
type SetupResult struct {
	Dirs        []provision.Result
	WebRoot     string
	LinkCreated bool
	SetupFile   string
}

// Setup is the one-time environment provisioning routine
type Setup struct {
	settings    *config.Settings
	fs          afero.Fs
	prompter    *input.Prompter
	provisioner *provision.Provisioner
}

// NewSetup wires the setup routine
func NewSetup(settings *config.Settings, fs afero.Fs, prompter *input.Prompter) *Setup {
	return &Setup{
		settings:    settings,
		fs:          fs,
		prompter:    prompter,
		provisioner: provision.New(fs),
	}
}

// Run asks for the web root and default email, creates the directory
// skeleton, links the web root and saves the answers.
func (s *Setup) Run(ctx context.Context) (*SetupResult, error) {
	output.Banner(SetupBanner)
	output.Print(setupIntro,
		s.settings.WebRootLink(),
		s.settings.SiteWebRoot,
		s.settings.Dir(config.DirDatabase),
		s.settings.ServerConfigDir(),
	)

	webRoot, err := s.prompter.Ask(input.Prompt{
		Label:    "Enter web root (without trailing slash)",
		Default:  s.settings.HostWebRoot,
		Validate: input.NotEmpty("web root"),
	})
	if err != nil {
		return nil, err
	}
	webRoot = trimTrailingSlash(webRoot)

	email, err := s.prompter.Ask(input.Prompt{
		Label:   "Enter the default email for new dev sites",
		Default: s.settings.DefaultEmail,
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &SetupResult{WebRoot: webRoot}

	dirs, err := s.provisioner.EnsureDirs(s.settings.Directories())
	res.Dirs = dirs
	for _, d := range dirs {
		if d.Status == provision.StatusCreated {
			output.Success("Created %s", d.Path)
		} else {
			output.Info("Skipped %s already exists", d.Path)
		}
	}
	if err != nil {
		return res, err
	}

	created, err := s.linkWebRoot(webRoot)
	if err != nil {
		return res, err
	}
	res.LinkCreated = created
	if created {
		output.Success("Created symlink to %s", webRoot)
	} else {
		output.Info("Skipped %s already exists", s.settings.WebRootLink())
	}

	setup := &config.SetupFile{WebRoot: webRoot, DefaultEmail: email}
	if err := config.SaveSetup(s.fs, s.settings.RootDir, setup); err != nil {
		return res, errors.Wrap(errors.ErrCodeConfig, "failed to save setup answers", err)
	}
	res.SetupFile = config.SetupFilePath(s.settings.RootDir)
	logger.InfoFields("setup saved", map[string]interface{}{
		"path":     res.SetupFile,
		"web_root": webRoot,
	})

	output.Print("Setup complete. Run %s/start.sh to start environment.", s.settings.RootDir)
	return res, nil
}

// linkWebRoot points <root>/www at webRoot unless something is already there
func (s *Setup) linkWebRoot(webRoot string) (bool, error) {
	link := s.settings.WebRootLink()

	var err error
	if lstater, ok := s.fs.(afero.Lstater); ok {
		_, _, err = lstater.LstatIfPossible(link)
	} else {
		_, err = s.fs.Stat(link)
	}
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, errors.Wrap(errors.ErrCodeFilesystem, fmt.Sprintf("failed to check %s", link), err)
	}

	linker, ok := s.fs.(afero.Linker)
	if !ok {
		return false, errors.ErrSymlinkUnsupported
	}
	if err := linker.SymlinkIfPossible(webRoot, link); err != nil {
		return false, errors.Wrap(errors.ErrCodeFilesystem, "failed to link web root", err)
	}
	return true, nil
}

func trimTrailingSlash(p string) string {
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" {
		return p
	}
	return trimmed
}
