// Package version carries the build version stamped via -ldflags.
package version

// Version is overridden at build time with
// -ldflags "-X github.com/gagnaveita/portvakt/internal/version.Version=...".
var Version = "dev"
