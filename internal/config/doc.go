// Package config manages user-level settings stored at
// ~/.awtaccess/config.yaml: the default output format, the log level and
// format, and an optional catalog manifest path.
package config
