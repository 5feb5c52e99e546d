package main

import (
	"github.com/kbukum/linqkit/config"
	"github.com/kbukum/linqkit/linq"
	"github.com/kbukum/linqkit/validation"
)

const (
	examplePrimes = "primes"
	exampleJoin   = "join"
	exampleGroup  = "group"
	exampleLookup = "lookup"
)

// DemoConfig is the configuration of the linqdemo command.
type DemoConfig struct {
	config.BaseConfig `yaml:",inline" mapstructure:",squash"`
	Demo              Settings `yaml:"demo" mapstructure:"demo"`
}

// Settings selects the examples to run.
type Settings struct {
	PrimeLimit int      `yaml:"prime_limit" mapstructure:"prime_limit" validate:"min=2,max=1000000"`
	Examples   []string `yaml:"examples" mapstructure:"examples" validate:"unique,dive,oneof=primes join group lookup"`
}

// ApplyDefaults fills unset fields.
func (c *DemoConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "linqdemo"
	}
	c.BaseConfig.ApplyDefaults()
	if c.Demo.PrimeLimit == 0 {
		c.Demo.PrimeLimit = 10000
	}
	if len(c.Demo.Examples) == 0 {
		c.Demo.Examples = []string{examplePrimes, exampleJoin, exampleGroup, exampleLookup}
	}
}

// Validate checks the base fields, then the struct tags.
func (c *DemoConfig) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(c); err != nil {
		return err
	}
	v := validation.New()
	v.Check(c.Demo.PrimeLimit > 2 || !c.runs(examplePrimes), "demo.prime_limit", "must be above 2 to find a prime")
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

func (c *DemoConfig) runs(name string) bool {
	return linq.Contains(linq.From(c.Demo.Examples), name)
}

func loadConfig(path string) (*DemoConfig, error) {
	var opts []config.LoaderOption
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	cfg := &DemoConfig{}
	if err := config.Load("linqdemo", cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
