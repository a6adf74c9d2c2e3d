// Package provision creates the directories the toolkit and its sites depend on.
//
// Every directory is checked before it is created so the report says
// truthfully whether it was made now or was already there. Pre-existing
// directories are never an error.
package provision

import (
	"fmt"

	"github.com/GuySartorelli/local-dev/internal/config"
	"github.com/GuySartorelli/local-dev/internal/errors"
	"github.com/GuySartorelli/local-dev/internal/logger"
	"github.com/spf13/afero"
)

// Status is what happened to a directory
type Status int

const (
	StatusCreated Status = iota
	StatusSkipped        // already present
)

// String returns the report verb for the status
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result reports one directory
type Result struct {
	Name   string
	Path   string
	Status Status
}

// Provisioner ensures directories exist on a filesystem
type Provisioner struct {
	fs afero.Fs
}

// New creates a Provisioner over fs
func New(fs afero.Fs) *Provisioner {
	return &Provisioner{fs: fs}
}

// EnsureDir creates path and its parents if absent
func (p *Provisioner) EnsureDir(path string) (Status, error) {
	exists, err := afero.Exists(p.fs, path)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeFilesystem, fmt.Sprintf("failed to check %s", path), err)
	}
	if exists {
		logger.Debug("directory %s already exists", path)
		return StatusSkipped, nil
	}

	if err := p.fs.MkdirAll(path, 0755); err != nil {
		return 0, errors.Wrap(errors.ErrCodeFilesystem, fmt.Sprintf("failed to create %s", path), err)
	}
	logger.Debug("created directory %s", path)
	return StatusCreated, nil
}

// EnsureDirs ensures every directory in order. It stops at the first
// failure, returning the results gathered so far with the error.
func (p *Provisioner) EnsureDirs(dirs []config.Dir) ([]Result, error) {
	results := make([]Result, 0, len(dirs))
	for _, d := range dirs {
		status, err := p.EnsureDir(d.Path)
		if err != nil {
			return results, err
		}
		results = append(results, Result{Name: d.Name, Path: d.Path, Status: status})
	}
	return results, nil
}
