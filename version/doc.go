// Package version reports the build version of stagekit binaries.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/stagekit/version.Version=1.0.0" ./cmd/stagekit
//
// Values left empty are filled from the module build info when available.
package version
