// Package profile resolves statement dialects by name
package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tirasundara/mt940-parser/internal/swift"
	"github.com/tirasundara/mt940-parser/internal/swift/taba"
)

var profiles = map[string]func() *swift.Profile{
	"mt940":   swift.MT940,
	"mt942":   swift.MT942,
	"taba940": taba.MT940,
	"taba942": taba.MT942,
}

// Lookup returns a fresh profile for name (case-insensitive)
func Lookup(name string) (*swift.Profile, error) {
	newProfile, ok := profiles[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q, expected one of %s", name, strings.Join(Names(), ", "))
	}
	return newProfile(), nil
}

// Names returns the registered profile names in sorted order
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
