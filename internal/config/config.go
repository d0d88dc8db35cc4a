package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"

	"coindash-api/pkg/confkit"
	marketpkg "coindash-api/pkg/market"
)

// CacheTTL carries the cache validity windows in seconds. Long is the
// series cache window (five minutes by default, matching the refresh
// cadence the dashboard promises its users).
type CacheTTL struct {
	Short  int `json:",default=10"`
	Medium int `json:",default=60"`
	Long   int `json:",default=300"`
}

// Refresher configures the auto-refresh daemon.
type Refresher struct {
	// IntervalSeconds must be one of 30, 60, 120, 300.
	IntervalSeconds int `json:",default=60"`
	// Symbols to keep warm; defaults to every supported asset.
	Symbols []string `json:",optional"`
	// Intervals to keep warm; defaults to 1d.
	Intervals []string `json:",optional"`
}

type Config struct {
	rest.RestConf
	// Env indicates the running environment: test | dev | prod.
	Env       string          `json:",default=test"`
	Redis     redis.RedisConf `json:",optional"`
	TTL       CacheTTL        `json:",optional"`
	Refresher Refresher       `json:",optional"`

	Market confkit.Section[marketpkg.Config] `json:",optional"`

	mainPath string
	baseDir  string
}

func (c *Config) IsTestEnv() bool {
	return c.Env == "test" || c.Env == ""
}

// HasRedis reports whether a redis-backed cache is configured.
func (c *Config) HasRedis() bool {
	return strings.TrimSpace(c.Redis.Host) != ""
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	confkit.LoadDotenvOnce()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	var cfg Config
	if err := conf.Load(absPath, &cfg, conf.UseEnv()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", absPath, err)
	}

	cfg.mainPath = absPath
	cfg.baseDir = filepath.Dir(absPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.hydrateSections(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var refresherIntervals = map[int]bool{30: true, 60: true, 120: true, 300: true}

func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "", "test", "dev", "prod":
		if strings.TrimSpace(c.Env) == "" {
			c.Env = "test"
		}
	default:
		return errors.New("config: env must be one of test|dev|prod")
	}
	if err := c.validateTTL(); err != nil {
		return err
	}
	return c.validateRefresher()
}

func (c *Config) validateTTL() error {
	if c.TTL.Short == 0 {
		c.TTL.Short = 10
	}
	if c.TTL.Medium == 0 {
		c.TTL.Medium = 60
	}
	if c.TTL.Long == 0 {
		c.TTL.Long = 300
	}
	if c.TTL.Short < 0 || c.TTL.Medium < 0 || c.TTL.Long < 0 {
		return errors.New("config: ttl windows must be positive")
	}
	return nil
}

func (c *Config) validateRefresher() error {
	if c.Refresher.IntervalSeconds == 0 {
		c.Refresher.IntervalSeconds = 60
	}
	if !refresherIntervals[c.Refresher.IntervalSeconds] {
		return fmt.Errorf("config: refresher interval %ds not in {30,60,120,300}", c.Refresher.IntervalSeconds)
	}
	for _, raw := range c.Refresher.Intervals {
		if _, err := marketpkg.ParseInterval(raw); err != nil {
			return fmt.Errorf("config: refresher: %w", err)
		}
	}
	return nil
}

func (c *Config) hydrateSections() error {
	if err := c.Market.Hydrate(c.baseDir, marketpkg.LoadConfig); err != nil {
		return fmt.Errorf("load market config: %w", err)
	}
	return nil
}

func (c *Config) MainPath() string {
	return c.mainPath
}

func (c *Config) BaseDir() string {
	return c.baseDir
}
