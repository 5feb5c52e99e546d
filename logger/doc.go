// Package logger provides zerolog-backed structured logging for linqkit
// commands.
//
// The query packages never log; loggers are created by programs that use
// them.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("linqdemo").WithComponent("primes")
//	log.Info("computed", logger.Fields("count", 1229))
package logger
