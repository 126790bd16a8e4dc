package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder collects configuration sources in priority order. Source
// errors are accumulated and reported together by build.
type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
		args:    os.Args[1:],
	}
}

// build merges the collected sources. A field already set by an earlier
// source is never overridden by a later one.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error loading config sources: %w", b.err)
	}

	merged := new(StructuredConfig)
	for i, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("error merging config source #%d: %w", i, err)
		}
	}

	return merged, nil
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

// withOverrides adds values chosen by the caller, e.g. the client CLI flags.
func (b *configBuilder) withOverrides(cfg *StructuredConfig) *configBuilder {
	return b.add(cfg, nil)
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	return b.add(envCfg, parseEnv(envCfg))
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags(b.args))
}

// withJSON loads the file named by the last source that set JSONFilePath.
// Without one it is a no-op.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	return b.add(parseJSON(path))
}

func (b *configBuilder) jsonPath() string {
	var path string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}

	return path
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaults(), nil)
}
