package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/treeforest/easybase/internal/client"
	log "github.com/treeforest/logger"
)

func main() {
	err := client.New(os.Stdout).Run(os.Args[1:])
	if errors.Is(err, client.ErrUsage) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}
