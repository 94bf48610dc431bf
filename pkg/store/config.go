package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultSource is the export file name the dashboard has always read.
const DefaultSource = "./jadwal-pembelajaran.json"

// SuggestedCacheDir is the cache.dir value the docs recommend for http(s)
// sources. The cache stays off until cache.dir is set.
const SuggestedCacheDir = "~/.cache/jadwal"

// Config describes where the timetable comes from and how it is served.
type Config interface {
	Source() string
	Watch() bool
	ServeAddr() string
	// CacheDir is where http(s) documents are cached; "" disables the cache.
	CacheDir() string
}

// LoadConfig reads .jadwal.yaml from ./ or $JADWAL_CONFIG_PATH. Environment
// variables prefixed with JADWAL_ override file values, and a .env file in the
// working directory is loaded first.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("store: load .env: %w", err)
	}

	viper.SetDefault("source", DefaultSource)
	viper.SetDefault("watch", false)
	viper.SetDefault("serve.addr", "127.0.0.1:8080")
	viper.SetDefault("cache.dir", "")
	viper.SetConfigName(".jadwal") // .yaml is implicit
	viper.SetEnvPrefix("JADWAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("JADWAL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cacheDir := viper.GetString("cache.dir")
	if cacheDir != "" {
		expanded, err := homedir.Expand(cacheDir)
		if err != nil {
			return nil, fmt.Errorf("store: expand cache dir: %w", err)
		}
		cacheDir = expanded
	}

	return &fileConfig{
		source:    viper.GetString("source"),
		watch:     viper.GetBool("watch"),
		serveAddr: viper.GetString("serve.addr"),
		cacheDir:  cacheDir,
	}, nil
}

type fileConfig struct {
	source    string
	watch     bool
	serveAddr string
	cacheDir  string
}

func (f *fileConfig) Source() string    { return f.source }
func (f *fileConfig) Watch() bool       { return f.watch }
func (f *fileConfig) ServeAddr() string { return f.serveAddr }
func (f *fileConfig) CacheDir() string  { return f.cacheDir }

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Location string
	Reload   bool
	Addr     string
	Cache    string
}

func (s StaticConfig) Source() string    { return s.Location }
func (s StaticConfig) Watch() bool       { return s.Reload }
func (s StaticConfig) ServeAddr() string { return s.Addr }
func (s StaticConfig) CacheDir() string  { return s.Cache }
