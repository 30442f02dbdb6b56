// Package config provides configuration loading, merging, and validation
// for the credential service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Anything still unset falls back to [Defaults]. The entry point is
// [GetStructuredConfig].
package config
