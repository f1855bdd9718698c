// Package trackdata loads a circuit catalog from an ini content file. The
// catalog annotates session responses with circuit names and lengths; a
// missing catalog or an unknown track is never fatal.
package trackdata

import (
	"github.com/cj123/ini"
)

type Circuit struct {
	Name    string `json:"Name"`
	Country string `json:"Country"`

	// LengthMeters is the official lap length. Used to sanity-check the
	// distance axis of incoming telemetry.
	LengthMeters float64 `json:"LengthMeters"`
}

type Catalog map[string]Circuit

// LoadCatalog reads a circuits ini file with one section per track key:
//
//	[monza]
//	NAME = Autodromo Nazionale Monza
//	COUNTRY = Italy
//	LENGTH = 5793
func LoadCatalog(path string) (Catalog, error) {
	circuitsFile, err := ini.Load(path)

	if err != nil {
		return nil, err
	}

	catalog := make(Catalog)

	for _, section := range circuitsFile.Sections() {
		if section.Name() == "DEFAULT" {
			continue
		}

		length, err := section.Key("LENGTH").Float64()

		if err != nil {
			length = 0
		}

		catalog[section.Name()] = Circuit{
			Name:         section.Key("NAME").String(),
			Country:      section.Key("COUNTRY").String(),
			LengthMeters: length,
		}
	}

	return catalog, nil
}

// Lookup returns the circuit for a track key, if the catalog has one.
func (c Catalog) Lookup(track string) (Circuit, bool) {
	if c == nil {
		return Circuit{}, false
	}

	circuit, ok := c[track]

	return circuit, ok
}
