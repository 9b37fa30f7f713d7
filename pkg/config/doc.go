// Package config loads configuration descriptions and candidate value
// files from disk. Descriptions come as TOML or XML (the format
// device-integration catalogs commonly ship in); value files come as
// TOML or YAML. All numbers in value files are loaded as
// arbitrary-precision decimals so the validator decides how they relate
// to the declared kind.
package config
