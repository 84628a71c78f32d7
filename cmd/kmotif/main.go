// cmd/kmotif/main.go
package main

import (
	"kmotif/internal/app"
	"kmotif/internal/appshell"
)

func main() { appshell.Main(app.Run) }
