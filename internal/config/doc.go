// Package config provides configuration management for anchovy.
//
// Configuration is loaded and merged in the following order, later layers
// overriding earlier ones:
//
//  1. Defaults compiled into the binary
//  2. User configuration (~/.config/anchovy/config.yaml)
//  3. Project configuration (./.anchovy/config.yaml)
//
// Command-line flags are applied on top by the cmd package.
//
// # Example
//
//	theme: dark
//	startPage: spectrum
//	feedback:
//	  copyDuration: 1500ms
//	  loadingDuration: 2s
//	clipboard:
//	  osc52Fallback: true
//	tokens:
//	  exportDir: ./design
//	  format: yaml
//	mcp:
//	  transport: sse
//	  host: localhost
//	  port: 8090
//	log:
//	  level: debug
//
// Empty or missing fields in a layer leave the previous value in place.
package config
