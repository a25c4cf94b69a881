package factory

import "github.com/kelseyhightower/envconfig"

// Config carries the environment-sourced defaults. Flags win over the
// environment; the environment exists so CI jobs and operators with a fixed
// subscription do not have to repeat it on every invocation.
type Config struct {
	SubscriptionID string `envconfig:"subscription_id"`
	ReportDir      string `envconfig:"report_dir" default:"."`
}

func ConfigFromEnv() (Config, error) {
	var config Config
	if err := envconfig.Process("vmrp", &config); err != nil {
		return Config{}, err
	}
	return config, nil
}
