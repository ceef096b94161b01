package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"orderstatuscolor/server/internal/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		log.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
