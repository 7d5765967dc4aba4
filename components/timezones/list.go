package timezones

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/mitchellh/go-homedir"
)

//go:embed data/iana_timezones.txt
var dataFS embed.FS

// zoneIndex is a sorted zone list plus a set for membership checks.
type zoneIndex struct {
	names []string
	set   map[string]struct{}
}

func newZoneIndex(names []string) zoneIndex {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return zoneIndex{names: names, set: set}
}

var embedded = sync.OnceValues(func() (zoneIndex, error) {
	f, err := dataFS.Open("data/iana_timezones.txt")
	if err != nil {
		return zoneIndex{}, err
	}
	defer func() { _ = f.Close() }()

	names, err := LoadZones(f)
	if err != nil {
		return zoneIndex{}, fmt.Errorf("timezones: embedded list: %w", err)
	}
	return newZoneIndex(names), nil
})

// DefaultZones returns a copy of the embedded zone list, sorted.
func DefaultZones() ([]string, error) {
	idx, err := embedded()
	if err != nil {
		return nil, err
	}
	return append([]string{}, idx.names...), nil
}

// Known reports whether zone is in the embedded list. Date elements only get
// a location_timezone the list knows about.
func Known(zone string) bool {
	idx, err := embedded()
	if err != nil {
		return false
	}
	_, ok := idx.set[zone]
	return ok
}

// LoadZones reads one zone name per line and returns them sorted without
// duplicates. Blank lines are skipped and "#" starts a comment, either on its
// own line or after a name. A line holding more than one name is an error.
func LoadZones(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("timezones: missing reader")
	}

	seen := map[string]struct{}{}
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		switch len(fields) {
		case 0:
			continue
		case 1:
			seen[fields[0]] = struct{}{}
		default:
			return nil, fmt.Errorf("timezones: line %d: expected one zone, got %q", line, strings.TrimSpace(text))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	zones := make([]string, 0, len(seen))
	for zone := range seen {
		zones = append(zones, zone)
	}
	sort.Strings(zones)
	return zones, nil
}

// ReadZonesFile loads a zone list from path, expanding a leading "~". Every
// entry must load as a location, so a typo fails here instead of rendering as
// an option the date field would then reject.
func ReadZonesFile(path string) ([]string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("timezones: open zone list: %w", err)
	}
	defer func() { _ = f.Close() }()

	zones, err := LoadZones(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expanded, err)
	}
	for _, zone := range zones {
		if _, err := LoadLocation(zone); err != nil {
			return nil, fmt.Errorf("%s: %w", expanded, err)
		}
	}
	return zones, nil
}
