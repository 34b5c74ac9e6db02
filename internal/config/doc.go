// Package config defines runtime configuration for cardgrab, populated
// from defaults, an optional .cardgrab YAML file, and CLI flags.
package config
