package main

import (
	"os"

	"github.com/francofil/proyecto-final-algoritmos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
