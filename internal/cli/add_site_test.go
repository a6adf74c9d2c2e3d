package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/GuySartorelli/local-dev/internal/config"
	siteerrors "github.com/GuySartorelli/local-dev/internal/errors"
	"github.com/GuySartorelli/local-dev/internal/output"
	"github.com/spf13/cobra"
)

const testRoot = "/opt/localdev"

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func quietOutput(t *testing.T) {
	t.Helper()
	output.SetOutput(io.Discard)
	t.Cleanup(func() { output.SetOutput(nil) })
}

func TestRunAddSite(t *testing.T) {
	tests := []struct {
		name        string
		input       []string
		provisioned bool
		setup       func(*TestHelper)
		wantErr     bool
		errIs       error
		validate    func(*testing.T, *TestHelper)
	}{
		{
			name:        "plain site",
			input:       []string{"example.test\n", "\n", "3\n", "n\n"},
			provisioned: true,
			validate: func(t *testing.T, h *TestHelper) {
				if len(h.MockDriver.WriteConfigCalls) != 1 {
					t.Fatalf("expected 1 WriteConfig call, got %d", len(h.MockDriver.WriteConfigCalls))
				}
				content := h.MockDriver.WriteConfigCalls[0].Content
				if !strings.Contains(content, "fcgi://php-fpm-7.4:9000/srv/www/example.test/htdocs/$1") {
					t.Errorf("unexpected config:\n%s", content)
				}
				if len(h.MockDriver.EnableCalls) != 1 {
					t.Errorf("expected 1 Enable call, got %d", len(h.MockDriver.EnableCalls))
				}
				if len(h.MockExec.Calls) != 0 {
					t.Errorf("expected no openssl calls, got %d", len(h.MockExec.Calls))
				}
			},
		},
		{
			name:        "site with https",
			input:       []string{"secure.test\n", "\n", "1\n", "y\n", "\n", "\n", "\n", "\n", "\n"},
			provisioned: true,
			validate: func(t *testing.T, h *TestHelper) {
				if len(h.MockExec.Calls) != 1 {
					t.Fatalf("expected 1 openssl call, got %d", len(h.MockExec.Calls))
				}
				if h.MockExec.Calls[0].Name != "openssl" {
					t.Errorf("expected openssl, got %s", h.MockExec.Calls[0].Name)
				}
				content := h.MockDriver.WriteConfigCalls[0].Content
				if !strings.Contains(content, "SSLCertificateFile /etc/apache2/ssl/secure.test.crt") {
					t.Errorf("expected certificate in config:\n%s", content)
				}
			},
		},
		{
			name:        "custom openssl binary",
			input:       []string{"secure.test\n", "\n", "1\n", "y\n", "\n", "\n", "\n", "\n", "\n"},
			provisioned: true,
			setup: func(h *TestHelper) {
				h.Settings.OpenSSLBinary = "/usr/local/opt/openssl/bin/openssl"
			},
			validate: func(t *testing.T, h *TestHelper) {
				if len(h.MockExec.Calls) != 1 {
					t.Fatalf("expected 1 openssl call, got %d", len(h.MockExec.Calls))
				}
				if h.MockExec.Calls[0].Name != "/usr/local/opt/openssl/bin/openssl" {
					t.Errorf("unexpected binary %s", h.MockExec.Calls[0].Name)
				}
			},
		},
		{
			name:        "not provisioned",
			input:       []string{"example.test\n", "\n", "1\n", "n\n"},
			provisioned: false,
			wantErr:     true,
			errIs:       siteerrors.ErrSetupRequired,
			validate: func(t *testing.T, h *TestHelper) {
				if len(h.MockDriver.WriteConfigCalls) != 0 {
					t.Error("expected no config to be written")
				}
			},
		},
		{
			name:        "stdin closed",
			input:       []string{"example.test\n"},
			provisioned: true,
			wantErr:     true,
			errIs:       siteerrors.ErrInputClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quietOutput(t)
			h := NewTestHelper(t, testRoot)
			h.SetStdinInput(tt.input...)
			if tt.provisioned {
				if err := h.Fs.MkdirAll(h.Settings.WebRootLink(), 0755); err != nil {
					t.Fatal(err)
				}
			}
			if tt.setup != nil {
				tt.setup(h)
			}

			err := runAddSite(testCommand(), nil)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errIs != nil && !errors.Is(err, tt.errIs) {
					t.Errorf("expected %v, got %v", tt.errIs, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.validate != nil {
				tt.validate(t, h)
			}
		})
	}
}

func TestRunAddSiteLoadFailures(t *testing.T) {
	quietOutput(t)
	oldDeps := GetDeps()
	t.Cleanup(func() { SetDeps(oldDeps) })

	t.Run("root detection", func(t *testing.T) {
		SetDeps(NewMockDeps().WithRootError(errors.New("no cwd")).Build())

		err := runAddSite(testCommand(), nil)
		if err == nil || !strings.Contains(err.Error(), "failed to detect toolkit root") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("settings", func(t *testing.T) {
		loader := &MockSettingsLoader{LoadErr: siteerrors.ErrConfigInvalid}
		SetDeps(NewMockDeps().WithRoot("/srv/localdev").WithSettingsLoader(loader).Build())

		err := runAddSite(testCommand(), nil)
		if !errors.Is(err, siteerrors.ErrConfigInvalid) {
			t.Errorf("expected config error, got %v", err)
		}
		if len(loader.LoadCalls) != 1 || loader.LoadCalls[0] != "/srv/localdev" {
			t.Errorf("expected settings to load from detected root, got %v", loader.LoadCalls)
		}
	})
}

func TestAddSiteSettingsFromLoader(t *testing.T) {
	quietOutput(t)
	h := NewTestHelper(t, testRoot)
	h.Settings.DefaultEmail = "saved@example.test"
	if err := h.Fs.MkdirAll(h.Settings.WebRootLink(), 0755); err != nil {
		t.Fatal(err)
	}
	h.SetStdinInput("example.test\n", "\n", "1\n", "n\n")

	if err := runAddSite(testCommand(), nil); err != nil {
		t.Fatalf("runAddSite failed: %v", err)
	}

	content := h.MockDriver.WriteConfigCalls[0].Content
	if !strings.Contains(content, "ServerAdmin saved@example.test") {
		t.Errorf("expected saved default email in config:\n%s", content)
	}
}

func TestMockSettingsLoaderDefaults(t *testing.T) {
	loader := &MockSettingsLoader{}
	s, err := loader.Load(nil, "/x")
	if err != nil {
		t.Fatal(err)
	}
	if s.RootDir != "/x" || s.SiteWebRoot != config.DefaultSiteWebRoot {
		t.Errorf("unexpected settings %+v", s)
	}
}
