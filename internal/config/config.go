package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"WOF_LOG_LEVEL" env-default:"info"`
	LogFile     string `yaml:"log-file" env:"WOF_LOG_FILE"`
	PrizesPath  string `yaml:"prizes-path" env:"WOF_PRIZES_PATH"`
	PhrasesPath string `yaml:"phrases-path" env:"WOF_PHRASES_PATH"`
	VowelCost   int    `yaml:"vowel-cost" env:"WOF_VOWEL_COST" env-default:"250"`
	Seed        int64  `yaml:"seed" env:"WOF_SEED"`
	Delays      Delays `yaml:"delays"`
	Redis       Redis  `yaml:"redis"`
}

// Delays pace the narration, NoPacing turns every pause off.
type Delays struct {
	NoPacing bool          `yaml:"no-pacing" env:"WOF_NO_PACING"`
	Spin     time.Duration `yaml:"spin" env:"WOF_DELAY_SPIN" env-default:"3s"`
	Reveal   time.Duration `yaml:"reveal" env:"WOF_DELAY_REVEAL" env-default:"1s"`
	Check    time.Duration `yaml:"check" env:"WOF_DELAY_CHECK" env-default:"2s"`
	Prompt   time.Duration `yaml:"prompt" env:"WOF_DELAY_PROMPT" env-default:"100ms"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"WOF_REDIS_ENABLED"`
	Host    string        `yaml:"host" env:"WOF_REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"WOF_REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"WOF_REDIS_TTL" env-default:"1h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the file at path, then the environment. A missing file leaves
// the environment and the defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
