// Package config loads SDK configuration with Viper.
//
// Values come from a YAML file, a .env file and the process environment, in
// that order of precedence (later wins). Environment variable names map onto
// nested keys by splitting on underscores, so TRANSPORT_TIMEOUT=5s sets
// transport.timeout.
//
// # Usage
//
//	var cfg MyConfig
//	err := config.LoadConfig("wallet", &cfg, config.WithEnvPrefix("PAYSDK"))
package config
