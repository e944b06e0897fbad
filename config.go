package geopack

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/viper"
)

// Config is the configuration of the tools built on this package, usually read from a
// TOML file (see LoadConfig).
type Config struct {
	Trace  TraceConfig  `mapstructure:"trace"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// TraceConfig configures field line tracing.
type TraceConfig struct {
	Err        float64 `mapstructure:"err"` // permissible error of each step
	MaxSteps   int     `mapstructure:"max_steps"`
	MaxRetries int     `mapstructure:"max_retries"`
	RLim       float64 `mapstructure:"rlim"`
	R0         float64 `mapstructure:"r0"`
	Workers    int     `mapstructure:"workers"`
	Model      string  `mapstructure:"model"` // internal model: igrf or dipole
}

// OutputConfig configures the exported files.
type OutputConfig struct {
	Dir       string `mapstructure:"dir"`
	Timestamp bool   `mapstructure:"timestamp"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("trace.err", defaultTraceErr)
	v.SetDefault("trace.max_steps", defaultMaxSteps)
	v.SetDefault("trace.max_retries", 100)
	v.SetDefault("trace.rlim", 60.0)
	v.SetDefault("trace.r0", 1.0)
	v.SetDefault("trace.workers", runtime.NumCPU())
	v.SetDefault("trace.model", "igrf")
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.timestamp", false)
	v.SetDefault("log.level", "info")
}

// LoadConfig reads the TOML configuration at path on top of the defaults, then applies the
// GEOPACK_* environment overrides (e.g. GEOPACK_TRACE_RLIM). An empty path only uses the
// defaults and the environment.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("geopack")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return c, c.Validate()
}

// Validate returns a DomainError for the first invalid setting.
func (c Config) Validate() error {
	t := c.Trace
	switch {
	case t.Err <= 0:
		return domainErr("config", "trace.err must be positive, got %g", t.Err)
	case t.MaxSteps <= 0:
		return domainErr("config", "trace.max_steps must be positive, got %d", t.MaxSteps)
	case t.MaxRetries <= 0:
		return domainErr("config", "trace.max_retries must be positive, got %d", t.MaxRetries)
	case t.R0 <= 0 || t.RLim <= t.R0:
		return domainErr("config", "need 0 < trace.r0 < trace.rlim, got r0=%g rlim=%g", t.R0, t.RLim)
	}
	if _, err := levelOption(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// NewTracer returns a Tracer of the provided models using these step settings.
func (c TraceConfig) NewTracer(s *RotationState, in InternalModel, ex ExternalModel, opts ModelOptions, logger kitlog.Logger) *Tracer {
	t := NewTracer(s, in, ex, opts)
	t.Err = c.Err
	t.MaxSteps = c.MaxSteps
	t.MaxRetries = c.MaxRetries
	if logger != nil {
		t.SetLogger(logger)
	}
	return t
}

func levelOption(lvl string) (level.Option, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug(), nil
	case "info", "":
		return level.AllowInfo(), nil
	case "warn", "warning":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none":
		return level.AllowNone(), nil
	default:
		return nil, domainErr("config", "unknown log level %q", lvl)
	}
}

// NewLogger returns a logfmt logger writing to w, which drops the records below lvl
// (debug, info, warn, error or none).
func NewLogger(w io.Writer, lvl string) (kitlog.Logger, error) {
	opt, err := levelOption(lvl)
	if err != nil {
		return nil, err
	}
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	return level.NewFilter(logger, opt), nil
}
