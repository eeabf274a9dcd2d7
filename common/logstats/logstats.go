package logstats

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	keyField   = 0
	valueField = 3
	minFields  = valueField + 1
)

// Pair is the most common value seen for a key, and the number of times it was seen.
type Pair struct {
	Value string
	Count int
}

func (p Pair) String() string {
	return fmt.Sprintf("(%s, %d)", p.Value, p.Count)
}

// MostCommonByKey counts, for every key in field 0 of the lines, how often each value in field 3
// occurs and returns the most frequent value per key. Fields are separated by single spaces.
// Ties are broken in favour of the lexicographically smallest value.
func MostCommonByKey(lines []string) (map[string]Pair, error) {
	counts := make(map[string]map[string]int)
	for i, line := range lines {
		fields := splitFields(line)
		if len(fields) < minFields {
			return nil, errors.Errorf("error line %d has %d fields, expected at least %d: %q", i+1, len(fields), minFields, line)
		}
		key, value := fields[keyField], fields[valueField]
		byValue, ok := counts[key]
		if !ok {
			byValue = make(map[string]int)
			counts[key] = byValue
		}
		byValue[value]++
	}

	result := make(map[string]Pair, len(counts))
	for key, byValue := range counts {
		var best Pair
		for value, count := range byValue {
			if count > best.Count || (count == best.Count && value < best.Value) {
				best = Pair{Value: value, Count: count}
			}
		}
		result[key] = best
	}
	return result, nil
}

// splitFields splits on single spaces, dropping trailing empty fields.
func splitFields(line string) []string {
	fields := strings.Split(line, " ")
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}
