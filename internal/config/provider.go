// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions selects where configuration comes from. ConfigFilePath
	// wins over ConfigDirPath; with neither, the platform directory and then
	// the working directory are searched.
	LoadOptions struct {
		ConfigFilePath string
		ConfigDirPath  string
	}

	// Provider loads a validated Config.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Config, error)
		// LoadResolved also reports the file that was read, or "" when only
		// defaults and BLOCKRESOLVE_* variables applied.
		LoadResolved(ctx context.Context, opts LoadOptions) (*Config, string, error)
	}

	fileProvider struct{}

	// StaticProvider ignores LoadOptions and returns a fixed result. A nil
	// Config with a nil Err yields DefaultConfig.
	StaticProvider struct {
		Config *Config
		Path   string
		Err    error
	}
)

// NewProvider returns the Provider that reads config.cue files.
func NewProvider() Provider {
	return fileProvider{}
}

func (fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	return cfg, err
}

func (fileProvider) LoadResolved(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	return loadWithOptions(ctx, opts)
}

// Load implements Provider.
func (s StaticProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := s.LoadResolved(ctx, opts)
	return cfg, err
}

// LoadResolved implements Provider.
func (s StaticProvider) LoadResolved(context.Context, LoadOptions) (*Config, string, error) {
	switch {
	case s.Err != nil:
		return nil, "", s.Err
	case s.Config == nil:
		return DefaultConfig(), s.Path, nil
	default:
		return s.Config, s.Path, nil
	}
}
