package main

import (
	"github.com/gwhitehawk/device-net/server/cmd/device-net-tools/commands"
	_ "github.com/gwhitehawk/device-net/server/cmd/device-net-tools/commands/devices"
	_ "github.com/gwhitehawk/device-net/server/cmd/device-net-tools/commands/logstats"
	_ "github.com/gwhitehawk/device-net/server/cmd/device-net-tools/commands/migrate"
)

func main() {
	commands.Execute()
}
