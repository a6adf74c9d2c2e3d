package cli

import (
	"fmt"

	"github.com/GuySartorelli/local-dev/internal/config"
	"github.com/GuySartorelli/local-dev/internal/input"
	"github.com/GuySartorelli/local-dev/internal/logger"
	"github.com/GuySartorelli/local-dev/internal/platform"
)

// loadSettings detects the toolkit root and builds its settings
func loadSettings() (*config.Settings, error) {
	if err := platform.Supported(); err != nil {
		logger.WarnFields("enabling sites may fail", map[string]interface{}{
			"platform": platform.Platform(),
			"error":    err.Error(),
		})
	}

	root, err := deps.RootDetector.DetectRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to detect toolkit root: %w", err)
	}

	settings, err := deps.SettingsLoader.Load(deps.FileSystem, root)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	logger.DebugFields("settings loaded", map[string]interface{}{
		"root":          settings.RootDir,
		"site_web_root": settings.SiteWebRoot,
		"platform":      platform.Platform(),
	})
	return settings, nil
}

// newPrompter reads answers from the configured stdin
func newPrompter() *input.Prompter {
	return input.NewPrompter(deps.StdinReader)
}
