package cfg

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/IsaacDSC/tvrelay/pkg/intertime"
	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidTarget = errors.New("invalid TARGET_URL")

type Port int

func (p Port) String() string {
	return ":" + strconv.Itoa(int(p))
}

type Forward struct {
	TargetURL string             `env:"TARGET_URL" env-default:"http://localhost:3000/webhook" env-description:"downstream endpoint receiving relayed webhooks"`
	Timeout   intertime.Duration `env:"FORWARD_TIMEOUT" env-default:"0s" env-description:"client timeout for the outbound call, 0 keeps the transport default"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

type Cache struct {
	CacheAddr string `env:"CACHE_ADDR" env-description:"redis address, enables forward insights when set"`
}

type Config struct {
	Port            Port               `env:"PORT" env-default:"4000"`
	ShutdownTimeout intertime.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"30s"`
	Forward         Forward
	Log             Log
	Cache           Cache
}

func (c Config) Validate() error {
	u, err := url.Parse(c.Forward.TargetURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidTarget, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidTarget)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	return nil
}

func (c Config) InsightsEnabled() bool {
	return c.Cache.CacheAddr != ""
}

var (
	cfg    Config
	loaded bool
	mu     sync.Mutex
)

// Load reads the environment once. Later calls return the same config.
func Load() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if loaded {
		return cfg, nil
	}

	var c Config
	if err := cleanenv.ReadEnv(&c); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	cfg = c
	loaded = true
	return cfg, nil
}

func Get() Config {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func SetConfig(c Config) {
	mu.Lock()
	cfg = c
	loaded = true
	mu.Unlock()
}

func reset() {
	mu.Lock()
	cfg = Config{}
	loaded = false
	mu.Unlock()
}
