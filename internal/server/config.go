package server

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/iwvelando/equity-payoff/internal/config"
	"github.com/iwvelando/equity-payoff/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the payoff API server.
type Config struct {
	Address        string               `yaml:"address"`
	MaxRequestSize string               `yaml:"maxRequestSize"`
	Schedule       ScheduleLimits       `yaml:"schedule"`
	Timeouts       Timeouts             `yaml:"timeouts"`
	Logging        config.LoggingConfig `yaml:"logging"`

	requestSizeBytes int64
}

// ScheduleLimits bounds /api/schedule requests. DefaultMonths applies when a
// request leaves maxMonths at zero; MaxMonths is the largest horizon accepted.
type ScheduleLimits struct {
	DefaultMonths int `yaml:"defaultMonths"`
	MaxMonths     int `yaml:"maxMonths"`
}

// Timeouts configures the HTTP server and its graceful shutdown. Values use
// Go duration syntax such as "15s" or "1m".
type Timeouts struct {
	Read     time.Duration `yaml:"read"`
	Write    time.Duration `yaml:"write"`
	Idle     time.Duration `yaml:"idle"`
	Shutdown time.Duration `yaml:"shutdown"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Address:        constants.DefaultServerAddress,
		MaxRequestSize: strconv.FormatInt(constants.DefaultMaxRequestSizeBytes, 10),
		Schedule: ScheduleLimits{
			DefaultMonths: constants.DefaultScheduleMaxMonths,
			MaxMonths:     constants.MaxRequestScheduleMonths,
		},
		Timeouts: Timeouts{
			Read:     constants.DefaultReadTimeout,
			Write:    constants.DefaultWriteTimeout,
			Idle:     constants.DefaultIdleTimeout,
			Shutdown: constants.DefaultShutdownTimeout,
		},
		requestSizeBytes: constants.DefaultMaxRequestSizeBytes,
	}
}

// LoadConfig reads the server configuration from YAML on top of
// DefaultConfig. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RequestSizeBytes returns the request body limit in bytes.
func (c *Config) RequestSizeBytes() int64 {
	return c.requestSizeBytes
}

// SetRequestSizeBytes overrides the request body limit. Non-positive sizes
// are ignored.
func (c *Config) SetRequestSizeBytes(size int64) {
	if size <= 0 {
		return
	}
	c.requestSizeBytes = size
	c.MaxRequestSize = strconv.FormatInt(size, 10)
}

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Address) == "" {
		c.Address = constants.DefaultServerAddress
	}

	size, err := ParseSize(c.MaxRequestSize)
	if err != nil {
		return fmt.Errorf("maxRequestSize: %w", err)
	}
	if size == 0 {
		size = constants.DefaultMaxRequestSizeBytes
	}
	c.requestSizeBytes = size

	var errs []error
	if c.Schedule.DefaultMonths <= 0 {
		errs = append(errs, fmt.Errorf("schedule.defaultMonths must be positive, got %d", c.Schedule.DefaultMonths))
	}
	if c.Schedule.MaxMonths < c.Schedule.DefaultMonths {
		errs = append(errs, fmt.Errorf("schedule.maxMonths %d is below schedule.defaultMonths %d",
			c.Schedule.MaxMonths, c.Schedule.DefaultMonths))
	}
	for name, d := range map[string]time.Duration{
		"read":     c.Timeouts.Read,
		"write":    c.Timeouts.Write,
		"idle":     c.Timeouts.Idle,
		"shutdown": c.Timeouts.Shutdown,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("timeouts.%s must be positive, got %s", name, d))
		}
	}
	return errors.Join(errs...)
}

var sizeUnits = map[string]int64{
	"":   1,
	"B":  1,
	"K":  1 << 10,
	"KB": 1 << 10,
	"M":  1 << 20,
	"MB": 1 << 20,
	"G":  1 << 30,
	"GB": 1 << 30,
}

// ParseSize converts a byte count with an optional binary unit suffix
// ("512", "64K", "10MB") into bytes. An empty value yields the default limit.
func ParseSize(value string) (int64, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	if trimmed == "" {
		return constants.DefaultMaxRequestSizeBytes, nil
	}

	number := strings.TrimRightFunc(trimmed, func(r rune) bool { return !unicode.IsDigit(r) })
	if number == "" {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	unit := strings.TrimSpace(trimmed[len(number):])
	multiplier, ok := sizeUnits[unit]
	if !ok {
		return 0, fmt.Errorf("unsupported size unit %q", unit)
	}

	n, err := strconv.ParseInt(strings.TrimSpace(number), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("size must not be negative: %s", value)
	}
	if n > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return n * multiplier, nil
}
