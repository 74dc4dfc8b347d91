// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/abekoci/election-map/models"
)

// Palette sentinels. Neither is a real party; both carry colors only.
const (
	// SentinelOther colors regions won by a multi-way tie.
	SentinelOther = models.WinnerOther

	// SentinelTBD colors regions with no winner yet.
	SentinelTBD = "TBD"
)

// Party holds display metadata for one party code. New parties are
// registry entries, never code changes.
type Party struct {
	Name  string `yaml:"name,omitempty"`
	Color string `yaml:"color"`
	Light string `yaml:"light,omitempty"`
}

// Catalog is the static reference data for one election: region seat
// capacities, the party registry, and the national totals. It is loaded
// once at process start and never mutated afterwards.
type Catalog struct {
	Regions            map[string]int   `yaml:"regions"`
	Parties            map[string]Party `yaml:"parties"`
	TotalNationalSeats int              `yaml:"totalNationalSeats"`
	MajorityThreshold  int              `yaml:"majorityThreshold"`
	Featured           []string         `yaml:"featured"`
}

// Default returns the built-in catalog: the 12 administrative regions
// and the party registry of the 2025 parliamentary election.
func Default() *Catalog {
	return &Catalog{
		Regions: map[string]int{
			"Berat":       7,
			"Dibër":       5,
			"Durrës":      14,
			"Elbasan":     14,
			"Fier":        16,
			"Gjirokastër": 4,
			"Korçë":       10,
			"Kukës":       3,
			"Lezhë":       7,
			"Shkodër":     11,
			"Tiranë":      37,
			"Vlorë":       12,
		},
		Parties: map[string]Party{
			"PS":          {Name: "Partia Socialiste", Color: "#E41A1C", Light: "#FADBD8"},
			"ASHM":        {Name: "Aleanca për Shqipërinë Madhështore", Color: "#377EB8", Light: "#D6EAF8"},
			"LB":          {Name: "Lëvizja Bashkë", Color: "#FDBF6F", Light: "#FEF9E7"},
			"KEA":         {Name: `Koalicioni "Euro-Atlantike"`, Color: "#CAB2D6", Light: "#E8DAEF"},
			"NSHB":        {Name: `Koalicioni "Nisma Shqipëria Bëhet"`, Color: "#FF7F00", Light: "#FDEBD0"},
			"DZH":         {Name: `Koalicioni "Djathas për Zhvillim"`, Color: "#B15928", Light: "#F6DDCC"},
			"PM":          {Name: "Partia Mundësia", Color: "#FFFF99", Light: "#FCFAD4"},
			"PSD":         {Name: "Partia Social Demokrate e Shqipërisë", Color: "#6A3D9A", Light: "#E1D6F0"},
			SentinelOther: {Color: "#cccccc", Light: "#EAECEE"},
			SentinelTBD:   {Color: "#f0f0f0"},
		},
		TotalNationalSeats: 140,
		MajorityThreshold:  71,
		Featured:           []string{"PS", "ASHM"},
	}
}

// Load reads a catalog from a YAML file and validates it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Regions) == 0 {
		return fmt.Errorf("no regions defined")
	}
	for region, seats := range c.Regions {
		if seats <= 0 {
			return fmt.Errorf("region %q has non-positive capacity %d", region, seats)
		}
	}
	if c.TotalNationalSeats <= 0 {
		return fmt.Errorf("totalNationalSeats must be positive")
	}
	for _, code := range c.Featured {
		if !c.KnownParty(code) {
			return fmt.Errorf("featured party %q not in registry", code)
		}
	}
	return nil
}

// Capacity returns a region's fixed seat capacity.
func (c *Catalog) Capacity(region string) (int, bool) {
	seats, ok := c.Regions[region]
	return seats, ok
}

// HasRegion reports whether region is part of the catalog.
func (c *Catalog) HasRegion(region string) bool {
	_, ok := c.Regions[region]
	return ok
}

// RegionNames returns all region names in ascending order, for
// deterministic iteration.
func (c *Catalog) RegionNames() []string {
	names := make([]string, 0, len(c.Regions))
	for region := range c.Regions {
		names = append(names, region)
	}
	sort.Strings(names)
	return names
}

// KnownParty reports whether code is a registered party. The Other and
// TBD sentinels are palette entries, not parties.
func (c *Catalog) KnownParty(code string) bool {
	if code == SentinelOther || code == SentinelTBD {
		return false
	}
	_, ok := c.Parties[code]
	return ok
}

// PartyCodes returns all registered party codes (sentinels excluded) in
// ascending order.
func (c *Catalog) PartyCodes() []string {
	codes := make([]string, 0, len(c.Parties))
	for code := range c.Parties {
		if c.KnownParty(code) {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// ColorFor maps a region winner to its fill color token. A nil winner,
// or a winner missing from the registry, falls back to the TBD color.
func (c *Catalog) ColorFor(winner *string) string {
	if winner == nil {
		return c.Parties[SentinelTBD].Color
	}
	if p, ok := c.Parties[*winner]; ok {
		return p.Color
	}
	return c.Parties[SentinelTBD].Color
}

// LightColorFor returns the light background shade for a party, falling
// back to the Other shade for unknown codes.
func (c *Catalog) LightColorFor(code string) string {
	if p, ok := c.Parties[code]; ok && p.Light != "" {
		return p.Light
	}
	return c.Parties[SentinelOther].Light
}

// DefaultSnapshot builds the "no data yet" snapshot: every region
// present with its capacity, no seats won, winner undecided.
func (c *Catalog) DefaultSnapshot() models.ResultsSnapshot {
	snap := make(models.ResultsSnapshot, len(c.Regions))
	for region, seats := range c.Regions {
		snap[region] = models.RegionRecord{
			TotalSeats: seats,
			Winner:     nil,
			SeatsWon:   map[string]int{},
		}
	}
	return snap
}
