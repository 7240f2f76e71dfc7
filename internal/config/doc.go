// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/blockresolve/config.cue (or the XDG equivalent on
// Linux, ~/Library/Application Support/blockresolve/config.cue on macOS,
// %APPDATA%\blockresolve\config.cue on Windows), then from config.cue in the working
// directory. BLOCKRESOLVE_* environment variables override file values.
//
// Configuration is validated against a CUE schema (config_schema.cue) before it is
// merged into Viper.
package config
