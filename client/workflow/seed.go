package workflow

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// SeedFile is a YAML document listing devices to add, in order.
//
//	devices:
//	  - mac_address: "AA:BB:CC:DD:EE:FF"
//	    device_type: Gateway
//	  - mac_address: "00:11:22:33:44:55"
//	    device_type: Switch
//	    uplink_mac_address: "AA:BB:CC:DD:EE:FF"
type SeedFile struct {
	Devices []Device `yaml:"devices"`
}

// ParseSeed parses a YAML seed document. Unknown fields are rejected.
func ParseSeed(data []byte) (*SeedFile, error) {
	seed := &SeedFile{}
	err := yaml.UnmarshalStrict(data, seed)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing seed YAML")
	}
	return seed, nil
}

// LoadSeedFile reads and parses the YAML seed file at path.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading seed file %s", path)
	}
	return ParseSeed(data)
}
