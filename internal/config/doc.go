// Package config provides configuration loading, merging, and validation
// facilities for the secure-notes server.
//
// Configuration is assembled from multiple sources in the following order;
// a field keeps the first non-zero value it receives:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults ([Defaults])
//
// The main entry point is [GetStructuredConfig].
package config
