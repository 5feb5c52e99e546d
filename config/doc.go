// Package config loads configuration for linqkit programs.
//
// Load uses Viper to read a YAML file found next to the program (or given
// explicitly), then overlays environment variables, including those from a
// .env file loaded with godotenv.
//
// # Usage
//
//	var cfg DemoConfig
//	if err := config.Load("linqdemo", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
//
// Environment variables map onto nested keys by underscores: DEMO_PRIME_LIMIT
// overrides demo.prime_limit.
package config
