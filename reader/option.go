package reader

import "github.com/viant/pdbscope/config"

type Option func(*Reader)

// WithConfig applies scope reading settings
func WithConfig(cfg *config.Config) Option {
	return func(r *Reader) {
		if cfg != nil {
			r.config = cfg
		}
	}
}

// WithGenericParamContext sets the generic context used for custom debug information
func WithGenericParamContext(gp GenericContext) Option {
	return func(r *Reader) {
		r.gp = gp
	}
}
