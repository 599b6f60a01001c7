// cmd/opfind/main.go
package main

import (
	"opfind/internal/app"
	"opfind/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
