// cmd/kmercount/main.go
package main

import (
	"kmercount/internal/app"
	"kmercount/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
