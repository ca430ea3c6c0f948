package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of all environment variables read by the App.
const EnvPrefix = "LIBM"

// Config defines the structure of the configuration file.
type Config struct {
	GitCommit    string        `yaml:"git_commit" envconfig:"LIBM_GIT_COMMIT"`
	GitTag       string        `yaml:"git_tag" envconfig:"LIBM_GIT_TAG"`
	BuildTime    string        `yaml:"build_time" envconfig:"LIBM_BUILD_TIME"`
	IsProduction bool          `yaml:"is_production" envconfig:"LIBM_IS_PRODUCTION"`
	LogLevel     zapcore.Level `yaml:"log_level" envconfig:"LIBM_LOG_LEVEL"`
	LogFolder    string        `yaml:"log_folder" envconfig:"LIBM_LOG_FOLDER"`
	LogMaxSize   int           `yaml:"log_max_size" envconfig:"LIBM_LOG_MAX_SIZE"` // in megabytes
	Console      ConsoleConfig `yaml:"console"`
}

type ConsoleConfig struct {
	History     bool `yaml:"history" envconfig:"LIBM_CONSOLE_HISTORY"`
	CtrlCAborts bool `yaml:"ctrl_c_aborts" envconfig:"LIBM_CONSOLE_CTRL_C_ABORTS"`
}

// DefaultConfig provides the values used for non provided parameters.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   zapcore.WarnLevel,
		LogMaxSize: 10,
		Console: ConsoleConfig{
			History:     true,
			CtrlCAborts: true,
		},
	}
}

// LoadConfigFile overrides the given config with the content of the yaml
// file. A missing file leaves the config untouched.
func LoadConfigFile(configFile string, cfg *Config) error {
	file, err := os.Open(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	err = yaml.NewDecoder(file).Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// LoadEnvFile sets environment variables from the dotenv file if it exists.
// Variables already present in the environment are not overridden.
func LoadEnvFile(envFile string) error {
	if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load(envFile)
}

// LoadConfigEnvs reads the environments variables into the App config.
func LoadConfigEnvs(prefix string, config *Config) error {
	return envconfig.Process(prefix, config)
}

// InitConfig configures build tags values to be used if provided
// and checks the consistency of the final values.
func InitConfig(config *Config, gitCommit, gitTag, buildTime string) error {
	if len(gitCommit) != 0 {
		config.GitCommit = gitCommit
	}

	if len(gitTag) != 0 {
		config.GitTag = gitTag
	}

	if len(buildTime) != 0 {
		config.BuildTime = buildTime
	}

	if config.IsProduction && len(config.LogFolder) == 0 {
		return errors.New("make sure to set a valid log folder in production")
	}

	if len(config.LogFolder) != 0 && config.LogMaxSize <= 0 {
		return errors.New("make sure to set a positive log max size when logging to files")
	}

	return nil
}

// LoadAndInitConfigs loads in order the configs from various predefined sources
// then build the App configuration data.
func LoadAndInitConfigs(opts Options) (*Config, error) {
	config := DefaultConfig()

	// Setup the yaml configuration from file.
	err := LoadConfigFile(opts.ConfigFile, config)
	if err != nil {
		return nil, fmt.Errorf("failed to load configurations from file: %s", err)
	}

	// Set the environment configuration.
	err = LoadEnvFile(opts.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to set environment configurations: %s", err)
	}

	// Use environment variables with prefix `LIBM`.
	err = LoadConfigEnvs(EnvPrefix, config)
	if err != nil {
		return nil, fmt.Errorf("failed to load configurations from environment: %s", err)
	}

	err = InitConfig(config, opts.GitCommit, opts.GitTag, opts.BuildTime)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize configurations: %s", err)
	}
	return config, nil
}
