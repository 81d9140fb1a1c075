package citegraph

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// Option configures a single Sort, SortMetrics, or Levels call.
type Option func(*sortConfig) error

type sortConfig struct {
	logger hclog.Logger
}

func newSortConfig(opts ...Option) (*sortConfig, error) {
	cfg := &sortConfig{
		logger: hclog.L(),
	}

	var cfgErr error
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			cfgErr = multierror.Append(cfgErr, err)
		}
	}

	return cfg, cfgErr
}

// Logger sets the logger used during the sort. The default is the
// global hclog logger.
func Logger(l hclog.Logger) Option {
	return func(cfg *sortConfig) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}

		cfg.logger = l
		return nil
	}
}
