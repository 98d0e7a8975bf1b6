// Package env loads .env files and resolves ${VAR} references in config
// values, so API keys stay out of committed config files.
package env
