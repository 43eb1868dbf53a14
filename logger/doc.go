// Package logger provides structured logging for the SDK using zerolog.
//
// The SDK never installs a global logger. Callers hand one to the client, or
// the client builds one from its logging configuration.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.New(&cfg, "paysdk").WithComponent("transport")
//	log.Debug("request sent", logger.Fields("url", u))
package logger
