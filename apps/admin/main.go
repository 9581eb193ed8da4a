package main

import (
	"log"
	"os"

	"github.com/siakad-id/siakad/core"
)

func main() {
	conf := core.NewConfig()

	a, err := newApp(conf)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if err := newRootCmd(a).Execute(); err != nil {
		reportError(a, err)
		os.Exit(1)
	}
}
