// cmd/kmerkit/main.go
package main

import (
	"kmerkit/internal/app"
	"kmerkit/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
