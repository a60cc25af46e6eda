package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/de-tools/report-lab/pkg/models/domain"
)

// Defaults for profiles that omit keys, and for the built-in registry.
const (
	DefaultSeed   = 42
	DefaultRows   = 1000
	DefaultFormat = "table"

	defaultProfileName = "default"
)

type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.Profile, error)
	GetProfile(ctx context.Context, name string) (domain.Profile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

// NewRegistry loads report profiles from an ini file, one section per
// profile with optional seed/rows/format keys.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (ir *iniRegistry) GetProfiles(_ context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	for _, section := range ir.cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		profile, err := sectionProfile(section)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (ir *iniRegistry) GetProfile(_ context.Context, name string) (domain.Profile, error) {
	if !ir.cfg.HasSection(name) {
		return domain.Profile{}, fmt.Errorf("profile %s not found", name)
	}
	return sectionProfile(ir.cfg.Section(name))
}

func sectionProfile(section *ini.Section) (domain.Profile, error) {
	// Key() creates missing keys, so check HasKey first.
	seed := int64(DefaultSeed)
	if section.HasKey("seed") {
		parsed, err := section.Key("seed").Int64()
		if err != nil {
			return domain.Profile{}, fmt.Errorf("profile %s: bad seed: %w", section.Name(), err)
		}
		seed = parsed
	}

	rows := DefaultRows
	if section.HasKey("rows") {
		parsed, err := section.Key("rows").Int()
		if err != nil {
			return domain.Profile{}, fmt.Errorf("profile %s: bad rows: %w", section.Name(), err)
		}
		rows = parsed
	}

	format := section.Key("format").String()
	if format == "" {
		format = DefaultFormat
	}

	return domain.Profile{
		Name:   section.Name(),
		Seed:   seed,
		Rows:   rows,
		Format: format,
	}, nil
}

type staticRegistry struct {
	profiles []domain.Profile
}

// NewDefaultRegistry returns a registry holding the single built-in
// profile (seed 42, 1000 rows). Used when no profiles file exists.
func NewDefaultRegistry() Registry {
	return &staticRegistry{
		profiles: []domain.Profile{{
			Name:   defaultProfileName,
			Seed:   DefaultSeed,
			Rows:   DefaultRows,
			Format: DefaultFormat,
		}},
	}
}

func (sr *staticRegistry) GetProfiles(_ context.Context) ([]domain.Profile, error) {
	return sr.profiles, nil
}

func (sr *staticRegistry) GetProfile(_ context.Context, name string) (domain.Profile, error) {
	for _, profile := range sr.profiles {
		if profile.Name == name {
			return profile, nil
		}
	}
	return domain.Profile{}, fmt.Errorf("profile %s not found", name)
}
