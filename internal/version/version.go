// internal/version/version.go
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X ccheck/internal/version.Version=1.2.3" ./cmd/ccheck
var Version = "dev"
