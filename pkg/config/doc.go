// Package config provides the layered configuration of the oasfaker CLI.
//
// Values are resolved with the following precedence (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (OASFAKER_* prefix)
//  3. Config file (--config, else .oasfaker.yaml in the current directory,
//     else oasfaker/config.yaml in the user config directory)
//  4. Default values
//
// Sources records where each value came from; `oasfaker config` prints it.
// Config.Options turns the result into validated faker.Options.
package config
