package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
}

type LogCfg struct {
	Level string
}

// StoreCfg selects the collection store driver. Driver is one of
// "redis", "postgres" or "memory". Namespace is prepended to every
// collection key.
type StoreCfg struct {
	Driver    string
	Namespace string
}

type DBCfg struct {
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

// MonitorCfg configures the uptime monitor. RelayURL is the base URL of
// the reachability relay that fetches target headers on our behalf.
type MonitorCfg struct {
	RelayURL         string
	ProbeTimeoutSec  int
	SweepIntervalSec int
	FeaturedName     string
}

type TelemetryCfg struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

type Config struct {
	App       AppCfg
	Log       LogCfg
	Store     StoreCfg
	Database  DBCfg
	Redis     RedisCfg
	Monitor   MonitorCfg
	Telemetry TelemetryCfg
}

func Load() (*Config, error) {
	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	base.AutomaticEnv()
	base.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	base.SetEnvPrefix("APP") // e.g. APP_APP_PORT -> app.port

	// First assign a default value (effective regardless of whether there is a file or not)
	setDefaults(base)

	// Read the file (if any)
	if err := base.ReadInConfig(); err == nil {
		// After finding the file, manually perform one expansion of ${ENV}, and then parse it.
		path := base.ConfigFileUsed()
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		expanded := os.ExpandEnv(string(raw))

		// Load the expanded content with a new viper and copy the env settings.
		v := viper.New()
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, err
		}
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.SetEnvPrefix("APP")
		setDefaults(v)

		cfg := new(Config)
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// No files are also allowed, using only env + default values
	cfg := new(Config)
	if err := base.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "mission-control")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("store.driver", "redis")
	v.SetDefault("store.namespace", "mc_")
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("database.maxOpen", 10)
	v.SetDefault("database.maxIdle", 5)
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("monitor.relayURL", "https://api.allorigins.win")
	v.SetDefault("monitor.probeTimeoutSec", 8)
	v.SetDefault("monitor.sweepIntervalSec", 120)
	v.SetDefault("monitor.featuredName", "watch")
	v.SetDefault("telemetry.sampleRatio", 1.0)
}
