// Package config provides configuration loading, merging, and validation
// facilities for the proxy server and the CLI client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields still zero after merging take the defaults from defaults.go. The
// entry points are [GetProxyConfig] and [GetClientConfig].
package config
