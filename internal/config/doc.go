// Package config loads and merges application configuration from
// environment variables, command-line flags, an optional JSON file,
// and built-in defaults.
//
// Sources are merged in that order: the first source to set a field wins,
// and the defaults layer only fills what every explicit source left empty.
package config
