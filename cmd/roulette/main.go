package main

import (
	"os"

	"arcade-roulette-service/internal/cli"
)

const appVersion = "dev"

func main() {
	os.Exit(cli.Execute(cli.Options{Version: appVersion}, os.Args[1:]))
}
