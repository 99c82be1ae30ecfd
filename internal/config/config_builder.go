package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder collects one partial [StructuredConfig] per source. Sources
// appended later win on every field they set; errors from all sources are
// joined and reported once by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 3)}
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.configs {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	merged.applyDefaults()

	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add(parseEnv())
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.withArgs(os.Args[1:])
}

func (b *configBuilder) withArgs(args []string) *configBuilder {
	cfg, err := ParseFlags(args)
	if err != nil {
		err = fmt.Errorf("error parsing flags: %w", err)
	}
	return b.add(cfg, err)
}

// withJSON loads the file named by the most recent source that set one.
// Without a path it is a no-op.
func (b *configBuilder) withJSON() *configBuilder {
	for i := len(b.configs) - 1; i >= 0; i-- {
		if path := b.configs[i].JSONFilePath; path != "" {
			return b.add(parseJSON(path))
		}
	}
	return b
}
