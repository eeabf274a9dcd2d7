package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gwhitehawk/device-net/common/util"
	"github.com/gwhitehawk/device-net/common/version"
	"github.com/gwhitehawk/device-net/server/app"
)

const shutdownTimeout = 5 * time.Minute

func main() {
	fmt.Printf("device-net server v%s\n", version.VersionToString())
	fmt.Printf("Starting with args: %v\n", util.FilterOSArgs(os.Args, app.LogSafeFlags))

	config, err := app.ConfigFromFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("Error parsing flags: %s", err)
	}

	server, cleanup, err := app.New(context.Background(), config)
	if err != nil {
		log.Fatalf("Error creating app: %s", err)
	}
	defer cleanup()
	server.Start()

	// Wait for SIGINT or SIGTERM before shutting down server
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = server.Stop(ctx)
	if err != nil {
		log.Print(err.Error())
		return
	}
	log.Print("Server shutdown complete")
}
