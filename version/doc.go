// Package version reports build information for linqkit binaries.
//
// Version and commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/linqkit/version.Version=1.0.0" ./cmd/linqdemo
package version
