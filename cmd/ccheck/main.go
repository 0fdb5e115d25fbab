// cmd/ccheck/main.go
package main

import (
	"ccheck/internal/app"
	"ccheck/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
