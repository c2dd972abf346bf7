package config

import (
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
}

var once sync.Once
var config *SchedulerConfig
var loadErr error

// GetSchedulerConfig reads config.yaml once and returns the shared config.
// Environment variables with the SCHEDSIM_ prefix override file values.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		viper.SetEnvPrefix("schedsim")
		viper.AutomaticEnv()
		viper.SetDefault("port", 9095)
		viper.SetDefault("scheduler.round_robin.time_quantum", 2)
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				loadErr = err
				return
			}
		}
		config = &SchedulerConfig{}
		config.Port = viper.GetInt("port")
		config.RoundRobinTimeQuantum = viper.GetInt("scheduler.round_robin.time_quantum")
	})

	return config, loadErr
}
