package ssl

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/GuySartorelli/local-dev/internal/config"
	"github.com/GuySartorelli/local-dev/internal/errors"
	"github.com/GuySartorelli/local-dev/internal/executor"
	"github.com/GuySartorelli/local-dev/internal/logger"
)

// Certificate parameters
const (
	ValidDays = 365
	KeyBits   = 2048
)

// Cert represents a generated key pair on disk
type Cert struct {
	Domain   string
	CertPath string
	KeyPath  string
}

// Generator creates self-signed certificates in a key store directory
type Generator struct {
	exec   executor.CommandExecutor
	dir    string
	binary string
}

// NewGenerator creates a Generator writing into dir using the openssl on PATH
func NewGenerator(exec executor.CommandExecutor, dir string) *Generator {
	return &Generator{exec: exec, dir: dir, binary: config.DefaultOpenSSLBinary}
}

// WithBinary returns a copy of g that runs the given openssl binary
func (g *Generator) WithBinary(binary string) *Generator {
	c := *g
	c.binary = binary
	return &c
}

// IsInstalled checks if openssl is available
func (g *Generator) IsInstalled() bool {
	_, err := g.exec.LookPath(g.binary)
	return err == nil
}

// CertPaths returns where the key pair for domain is written
func (g *Generator) CertPaths(domain string) *Cert {
	return &Cert{
		Domain:   domain,
		CertPath: filepath.Join(g.dir, domain+".crt"),
		KeyPath:  filepath.Join(g.dir, domain+".key"),
	}
}

// Args returns the openssl arguments for domain and subject
func (g *Generator) Args(domain string, subject config.TLSSubject) []string {
	cert := g.CertPaths(domain)
	return []string{
		"req", "-x509", "-nodes",
		"-days", fmt.Sprint(ValidDays),
		"-newkey", fmt.Sprintf("rsa:%d", KeyBits),
		"-keyout", cert.KeyPath,
		"-out", cert.CertPath,
		"-subj", subject.Subject(domain),
	}
}

// Generate writes <domain>.key and <domain>.crt and returns their paths.
// It blocks until openssl exits.
func (g *Generator) Generate(ctx context.Context, domain string, subject config.TLSSubject) (*Cert, error) {
	if !g.IsInstalled() {
		return nil, errors.ErrOpenSSLNotInstalled
	}

	args := g.Args(domain, subject)
	logger.Debug("running %s %s", g.binary, strings.Join(args, " "))

	result, err := g.exec.Execute(ctx, g.binary, args...)
	if err != nil {
		return nil, errors.WrapDomain(errors.ErrCodeCertificate, domain, "failed to run openssl", err)
	}
	if !result.Success() {
		out := strings.TrimSpace(string(result.Output))
		if out == "" {
			out = "no output"
		}
		logger.DebugFields("openssl failed", map[string]interface{}{
			"domain":    domain,
			"exit_code": result.ExitCode,
		})
		return nil, errors.WrapDomain(errors.ErrCodeCertificate, domain,
			fmt.Sprintf("openssl exited with status %d", result.ExitCode), errors.New(out))
	}

	return g.CertPaths(domain), nil
}
