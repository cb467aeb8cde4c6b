// Package config provides the configuration loader for sanity.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/sanity/internal/core/domain"
	"go.trai.ch/sanity/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when none is given.
const DefaultFilename = "sanity.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path, or DefaultFilename when path is
// empty. A missing default file yields the zero configuration.
func (l *Loader) Load(path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &domain.Config{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Info("loaded configuration from " + path)
	return cfg, nil
}

// Parse decodes a configuration document.
func Parse(data []byte) (*domain.Config, error) {
	var file Sanityfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	cfg := &domain.Config{
		EstimateSize: file.EstimateSize,
		Expected:     make([]domain.ExpectedRule, 0, len(file.Expected)),
	}

	for i, dto := range file.Expected {
		rule, err := toRule(dto)
		if err != nil {
			return nil, zerr.With(err, "expected", i)
		}
		cfg.Expected = append(cfg.Expected, rule)
	}

	return cfg, nil
}

func toRule(dto ExpectedRuleDTO) (domain.ExpectedRule, error) {
	if dto.Message == "" && dto.Fingerprint == "" {
		return domain.ExpectedRule{}, zerr.With(zerr.Wrap(domain.ErrInvalidExpectedRule, "invalid expected rule"), "reason", dto.Reason)
	}

	rule := domain.ExpectedRule{
		Message:     dto.Message,
		Fingerprint: dto.Fingerprint,
		Reason:      dto.Reason,
	}

	if dto.Type != "" {
		typ, err := domain.ParseInsanityType(dto.Type)
		if err != nil {
			return domain.ExpectedRule{}, err
		}
		if typ == domain.InsanityExpected {
			return domain.ExpectedRule{}, zerr.With(zerr.Wrap(domain.ErrInvalidInsanityType, "expected rules match reported types"), "type", dto.Type)
		}
		rule.Type = typ
	}

	return rule, nil
}
