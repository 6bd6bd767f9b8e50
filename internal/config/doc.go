// Package config holds the barcodegen configuration used by the CLI and
// the HTTP server.
//
// Values come from, in increasing priority: built-in defaults, a YAML file
// and command line flags. The file is looked up at the explicit --config
// path, then ./.barcodegen.yaml, then $XDG_CONFIG_HOME/barcodegen/config.yaml.
package config
