// Package version is stamped at build time:
//
//	go build -ldflags "-X kmerkit/internal/version.Version=v1.2.3 -X kmerkit/internal/version.Commit=$(git rev-parse --short HEAD)"
package version

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
)

func String() string {
	return fmt.Sprintf("kmerkit %s (commit=%s)", Version, Commit)
}
