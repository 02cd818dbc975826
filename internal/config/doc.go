// Package config loads the keygen tool configuration from a TOML file.
//
// A missing file is not an error: callers get the defaults. Values
// present in the file override defaults field by field.
package config
