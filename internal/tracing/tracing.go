package tracing

import (
	"io"

	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

type config interface {
	Enabled() bool
	ServiceName() string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init installs a jaeger tracer as the global opentracing tracer. Agent
// address and sampling can be tuned with the standard JAEGER_* variables.
// When tracing is off the global noop tracer stays in place.
func Init(config config) (io.Closer, error) {
	if !config.Enabled() {
		logger.Info("tracing disabled")
		return nopCloser{}, nil
	}

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "read jaeger env")
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = config.ServiceName()
	}
	if cfg.Sampler == nil || cfg.Sampler.Type == "" {
		cfg.Sampler = &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		}
	}

	closer, err := cfg.InitGlobalTracer(cfg.ServiceName)
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	logger.Info("tracing enabled", zap.String("service", cfg.ServiceName))
	return closer, nil
}
