package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const appDir = "filmoria"

// Environment variables checked for the catalog token, in order.
var TokenEnvVars = []string{"FILMORIA_TMDB_TOKEN", "TMDB_READ_ACCESS_TOKEN"}

// ErrMissingToken is returned by Validate when no catalog token is configured.
var ErrMissingToken = errors.New("TMDB read access token is not configured")

type Config struct {
	TMDB    TMDBConfig    `toml:"tmdb"`
	UI      UIConfig      `toml:"ui"`
	Player  PlayerConfig  `toml:"player"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
}

type TMDBConfig struct {
	Token     string   `toml:"token"`
	BaseURL   string   `toml:"base_url"`
	Timeout   Duration `toml:"timeout"`
	RateLimit *float64 `toml:"rate_limit"` // requests per second; 0 disables limiting
	Burst     int      `toml:"burst"`
}

type UIConfig struct {
	Debounce     Duration `toml:"debounce"`
	MinSearchLen int      `toml:"min_search_len"`
}

type PlayerConfig struct {
	MovieTemplate string `toml:"movie_template"`
	TVTemplate    string `toml:"tv_template"`
	Opener        string `toml:"opener"`
}

type StorageConfig struct {
	Backend string `toml:"backend"` // "sqlite" or "file"
	Path    string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultRateLimit applies when rate_limit is absent from the file.
const DefaultRateLimit = 40.0

// RequestsPerSecond is the configured rate limit; zero means unlimited.
func (t TMDBConfig) RequestsPerSecond() float64 {
	if t.RateLimit == nil {
		return DefaultRateLimit
	}
	return *t.RateLimit
}

// Duration decodes TOML strings such as "400ms" or "15s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(configDir, appDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func CacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(cacheDir, appDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// Default returns a config with every default applied and no token.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads config.toml from the config directory. A missing file yields the defaults.
func Load() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(dir, "config.toml"))
}

// LoadFile reads the given TOML file, substitutes ${VAR} references and applies defaults.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		content := substituteEnvVars(string(data))
		if _, err := toml.Decode(content, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.TMDB.BaseURL == "" {
		cfg.TMDB.BaseURL = "https://api.themoviedb.org/3"
	}
	if cfg.TMDB.Timeout.Duration == 0 {
		cfg.TMDB.Timeout.Duration = 15 * time.Second
	}
	if cfg.TMDB.RateLimit == nil {
		rps := DefaultRateLimit
		cfg.TMDB.RateLimit = &rps
	}
	if cfg.TMDB.Burst == 0 {
		cfg.TMDB.Burst = 20
	}
	if cfg.UI.Debounce.Duration == 0 {
		cfg.UI.Debounce.Duration = 400 * time.Millisecond
	}
	if cfg.UI.MinSearchLen == 0 {
		cfg.UI.MinSearchLen = 3
	}
	if cfg.Player.MovieTemplate == "" {
		cfg.Player.MovieTemplate = "https://vidsrc-embed.ru/embed/movie?tmdb={id}&autoplay=1"
	}
	if cfg.Player.TVTemplate == "" {
		cfg.Player.TVTemplate = "https://vidsrc-embed.ru/embed/tv?tmdb={id}&autoplay=1"
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "sqlite"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// applyEnv lets the environment override the token from the file.
func applyEnv(cfg *Config) {
	for _, name := range TokenEnvVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			cfg.TMDB.Token = v
			return
		}
	}
}

// Validate checks the loaded config. The returned error is a *Error; it wraps
// ErrMissingToken when the token is absent.
func (c *Config) Validate() error {
	e := &Error{}
	token := strings.TrimSpace(c.TMDB.Token)
	if token == "" || envVarPattern.MatchString(token) {
		e.missingToken = true
		e.Missing = append(e.Missing, TokenEnvVars[0])
	}
	switch c.Storage.Backend {
	case "sqlite", "file":
	default:
		e.Errors = append(e.Errors, fmt.Sprintf("storage.backend must be \"sqlite\" or \"file\", got %q", c.Storage.Backend))
	}
	if c.UI.MinSearchLen < 1 {
		e.Errors = append(e.Errors, "ui.min_search_len must be at least 1")
	}
	if c.TMDB.RequestsPerSecond() < 0 {
		e.Errors = append(e.Errors, "tmdb.rate_limit must not be negative")
	}
	if !strings.Contains(c.Player.MovieTemplate, "{id}") || !strings.Contains(c.Player.TVTemplate, "{id}") {
		e.Errors = append(e.Errors, "player templates must contain {id}")
	}
	if e.HasErrors() {
		return e
	}
	return nil
}

func Save(cfg *Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return SaveFile(filepath.Join(dir, "config.toml"), cfg)
}

func SaveFile(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1]
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match
	})
}
