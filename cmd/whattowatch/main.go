package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stderr)

	if err := newCLI(loadApp, runStub).Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
