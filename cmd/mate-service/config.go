// Config loading for the mate-service CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/phani92/mate-service/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend        = "backend"
	cfgKeyDataDir        = "data_dir"
	cfgKeyListenAddr     = "listen_addr"
	cfgKeyRedisAddr      = "redis_addr"
	cfgKeyRedisDB        = "redis_db"
	cfgKeyMaxUsers       = "max_users"
	cfgKeyMaxItems       = "max_items"
	cfgKeyMaxConsumption = "max_consumption"
	cfgKeyMaxPayments    = "max_payments"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# mate-service configuration

# Persistence backend: file, sqlite, or redis
backend: file

# Data directory for the file and sqlite backends
# (optional; overridable by --data-dir flag)
# data_dir:

# HTTP listen address
listen_addr: ":8080"

# Redis connection, used only by the redis backend
redis_addr: "localhost:6379"
redis_db: 0

# Collection capacity ceilings
max_users: 20
max_items: 50
max_consumption: 500
max_payments: 200
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendFile)
	v.SetDefault(cfgKeyListenAddr, ":8080")
	v.SetDefault(cfgKeyRedisAddr, "localhost:6379")
	v.SetDefault(cfgKeyRedisDB, 0)

	caps := types.DefaultCapacities()
	v.SetDefault(cfgKeyMaxUsers, caps.MaxUsers)
	v.SetDefault(cfgKeyMaxItems, caps.MaxItems)
	v.SetDefault(cfgKeyMaxConsumption, caps.MaxConsumption)
	v.SetDefault(cfgKeyMaxPayments, caps.MaxPayments)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// buildConfig assembles the store configuration from viper values and the
// resolved data directory.
func buildConfig(v *viper.Viper, dataDir string) types.Config {
	return types.Config{
		Backend:    v.GetString(cfgKeyBackend),
		DataDir:    dataDir,
		ListenAddr: v.GetString(cfgKeyListenAddr),
		RedisAddr:  v.GetString(cfgKeyRedisAddr),
		RedisDB:    v.GetInt(cfgKeyRedisDB),
		Capacities: types.Capacities{
			MaxUsers:       v.GetInt(cfgKeyMaxUsers),
			MaxItems:       v.GetInt(cfgKeyMaxItems),
			MaxConsumption: v.GetInt(cfgKeyMaxConsumption),
			MaxPayments:    v.GetInt(cfgKeyMaxPayments),
		},
	}
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
