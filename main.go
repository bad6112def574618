package main

import (
	"os"

	"hasm/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
