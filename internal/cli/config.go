package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/farmstock/internal/logging"
	"github.com/mesh-intelligence/farmstock/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "FARMSTOCK"

	cfgKeyDataDir   = "data_dir"
	cfgKeyDatabase  = "database"
	cfgKeyCurrency  = "currency"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
	cfgKeyPrices    = "prices"

	defaultCurrency  = "USD"
	defaultLogLevel  = "warn"
	defaultLogFormat = logging.FormatConsole
)

// configHeader is prepended to a generated config.yaml.
const configHeader = `# farmstock configuration
#
# data_dir:   data directory (overridden by --data-dir)
# database:   SQLite file name inside data_dir
# currency:   ISO 4217 code used to print money
# log_level:  debug, info, warn or error (FARMSTOCK_LOG_LEVEL)
# log_format: console or json (FARMSTOCK_LOG_FORMAT)
# prices:     commodity prices written to a new database; edit the
#             Commodity table to change them afterwards
`

// configFile holds the structure written to config.yaml.
type configFile struct {
	DataDir   string             `yaml:"data_dir,omitempty"`
	Database  string             `yaml:"database"`
	Currency  string             `yaml:"currency"`
	LogLevel  string             `yaml:"log_level"`
	LogFormat string             `yaml:"log_format"`
	Prices    map[string]float64 `yaml:"prices"`
}

// settings is the resolved configuration for one invocation.
type settings struct {
	DataDir   string
	Database  string
	Currency  string
	LogLevel  string
	LogFormat string
	Prices    map[string]float64
}

// loadSettings reads config.yaml from configDir using Viper. It creates the
// config directory and a default config.yaml on first run.
func loadSettings(configDir string) (settings, error) {
	if _, err := writeConfigIfMissing(configDir, ""); err != nil {
		return settings{}, err
	}

	v := viper.New()
	v.SetDefault(cfgKeyDatabase, types.DefaultDatabase)
	v.SetDefault(cfgKeyCurrency, defaultCurrency)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	// data_dir is not bound: FARMSTOCK_DATA_DIR ranks below config.yaml and
	// is handled by paths.ResolveDataDir.
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyDatabase, cfgKeyCurrency, cfgKeyLogLevel, cfgKeyLogFormat} {
		if err := v.BindEnv(key); err != nil {
			return settings{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	prices, err := readPrices(v)
	if err != nil {
		return settings{}, err
	}

	return settings{
		DataDir:   v.GetString(cfgKeyDataDir),
		Database:  v.GetString(cfgKeyDatabase),
		Currency:  strings.ToUpper(v.GetString(cfgKeyCurrency)),
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
		Prices:    prices,
	}, nil
}

// readPrices returns the prices section keyed by commodity name. Viper
// lower-cases keys, so they are matched back to types.CommodityKeys; unknown
// items are ignored.
func readPrices(v *viper.Viper) (map[string]float64, error) {
	var raw map[string]float64
	if err := v.UnmarshalKey(cfgKeyPrices, &raw); err != nil {
		return nil, fmt.Errorf("read prices: %w", err)
	}
	prices := make(map[string]float64, len(types.CommodityKeys))
	for _, item := range types.CommodityKeys {
		if p, ok := raw[strings.ToLower(item)]; ok {
			prices[item] = p
		}
	}
	return prices, nil
}

// defaultConfig returns the values written to a new config.yaml.
func defaultConfig(dataDir string) configFile {
	prices := make(map[string]float64, len(types.CommodityKeys))
	for _, item := range types.CommodityKeys {
		prices[item] = 0
	}
	return configFile{
		DataDir:   dataDir,
		Database:  types.DefaultDatabase,
		Currency:  defaultCurrency,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		Prices:    prices,
	}
}

// writeConfigIfMissing creates configDir and a default config.yaml inside it
// if the file does not exist. A non-empty dataDir is recorded as data_dir.
// It reports whether the file was created; an existing file is left alone.
func writeConfigIfMissing(configDir, dataDir string) (bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(configDir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := defaultConfig(dataDir)
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
