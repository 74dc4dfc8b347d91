// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the static reference data the rest of the system
validates against: region seat capacities, the open party registry with
display colors, and the fixed national seat total.

# Lifecycle

A Catalog is immutable once constructed. Use Default for the built-in
election data or Load to read a YAML file:

	regions:
	  Berat: 7
	  Tiranë: 37
	parties:
	  PS: {name: "Partia Socialiste", color: "#E41A1C", light: "#FADBD8"}
	totalNationalSeats: 140
	majorityThreshold: 71
	featured: [PS, ASHM]

# Sentinels

The registry carries two palette-only entries: Other (tied region) and
TBD (no winner yet). They are never counted as parties by KnownParty or
PartyCodes.
*/
package catalog
