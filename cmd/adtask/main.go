package main

import (
	"os"

	"github.com/autodiff/adtask/cmd/adtask/internal"
)

func main() {
	os.Exit(internal.Execute())
}
