// Package config loads YAML configuration for the should CLI: which
// judgment backend to use, how to reach it, and where to keep the verdict
// history. API keys are referenced as ${VAR} and resolved from the
// environment at build time.
package config
