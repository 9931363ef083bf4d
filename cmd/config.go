package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "HVAC"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5001")
	v.SetDefault("log.level", "info")
	v.SetDefault("readings.driver", "csv")
	v.SetDefault("readings.csv_path", "sensor_data.csv")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("schedule.timezone", "Local")
	v.SetDefault("influx.url", "")
	v.SetDefault("influx.token", "")
	v.SetDefault("influx.org", "")
	v.SetDefault("influx.bucket", "")
	v.SetDefault("simulator.enabled", false)
	v.SetDefault("simulator.tick", 15*time.Second)
}

// loadConfig reads configs/config.yml over the defaults. HVAC_* env vars
// override both, e.g. HVAC_READINGS_DRIVER=sqlite. A missing file is not an error.
func loadConfig() error {
	return configure(viper.GetViper(), "configs")
}

func configure(v *viper.Viper, dirs ...string) error {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, d := range dirs {
		v.AddConfigPath(d) // <dir>/config.yml
	}
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}
