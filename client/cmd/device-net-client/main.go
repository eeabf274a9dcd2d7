package main

import (
	"github.com/gwhitehawk/device-net/client/cmd/device-net-client/commands"
)

func main() {
	commands.Execute()
}
