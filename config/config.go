package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config controls scope tree reading and export
type Config struct {
	MemoizePath      bool     `yaml:"memoizePath,omitempty"`      // cache the resolved method on every visited ancestor
	SkipHiddenLocals bool     `yaml:"skipHiddenLocals,omitempty"` // drop DebuggerHidden locals
	SkipConstants    bool     `yaml:"skipConstants,omitempty"`    // do not decode constants on export
	Methods          []uint32 `yaml:"methods,omitempty"`          // method rids to export, all image methods when empty
	Output           string   `yaml:"output,omitempty"`           // export destination URL
}

func DefaultConfig() *Config {
	return &Config{
		Output: "scopes.yaml",
	}
}

// Load reads a YAML config from URL on top of the defaults
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config %v: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return ret, nil
}
