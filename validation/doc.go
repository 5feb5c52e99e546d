// Package validation checks configuration structs.
//
// Struct tags are evaluated with go-playground/validator and fields are
// reported by their mapstructure key:
//
//	type Settings struct {
//	    PrimeLimit int      `mapstructure:"prime_limit" validate:"min=2,max=1000000"`
//	    Examples   []string `mapstructure:"examples" validate:"dive,oneof=primes join group lookup"`
//	}
//	err := validation.Validate(settings)
//
// Cross-field rules use a Validator:
//
//	v := validation.New()
//	v.Check(len(examples) > 0, "examples", "must not be empty")
//	err := v.Validate()
package validation
