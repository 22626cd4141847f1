// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Terminal host, PNG snapshots, TOML settings store, metrics endpoint
// 0.2.0 - Lucky star, asteroid belt, solid sector shading
// 0.1.0 - Initial release: mean-anomaly planets, drifting hour ring, startup sweep
