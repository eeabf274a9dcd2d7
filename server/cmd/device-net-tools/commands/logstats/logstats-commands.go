package logstats

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gwhitehawk/device-net/common/logstats"
	"github.com/gwhitehawk/device-net/server/cmd/device-net-tools/cli"
	"github.com/gwhitehawk/device-net/server/cmd/device-net-tools/commands"
)

func init() {
	commands.RootCmd.AddCommand(logStatsCmd)
}

var logStatsCmd = &cobra.Command{
	Use:   "log-stats <file>",
	Short: "Reports the most common value (4th field) for each key (1st field) in a space separated log file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := readLines(args[0])
		if err != nil {
			return err
		}
		stats, err := logstats.MostCommonByKey(lines)
		if err != nil {
			return errors.Wrapf(err, "error parsing %s", args[0])
		}
		keys := make([]string, 0, len(stats))
		for key := range stats {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			cli.Stdout.Printf("%s %s", key, stats[key])
		}
		return nil
	},
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading log file")
	}
	return lines, nil
}
