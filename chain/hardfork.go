// Copyright 2025 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

// Package chain holds the protocol upgrade schedule shared by the
// precompile registry.
package chain

import "strings"

// Hardfork identifies a protocol upgrade point. The constants are totally
// ordered: a later fork always compares greater than every fork before it,
// and feature availability is decided by that order alone.
type Hardfork int

const (
	Frontier Hardfork = iota
	Homestead
	TangerineWhistle
	SpuriousDragon
	Byzantium
	Constantinople
	Petersburg
	Istanbul
	MuirGlacier
	Berlin
	London
	ArrowGlacier
	GrayGlacier
	Paris
	Shanghai
	Cancun
	Prague
	Osaka
)

var hardforkNames = [...]string{
	Frontier:         "Frontier",
	Homestead:        "Homestead",
	TangerineWhistle: "TangerineWhistle",
	SpuriousDragon:   "SpuriousDragon",
	Byzantium:        "Byzantium",
	Constantinople:   "Constantinople",
	Petersburg:       "Petersburg",
	Istanbul:         "Istanbul",
	MuirGlacier:      "MuirGlacier",
	Berlin:           "Berlin",
	London:           "London",
	ArrowGlacier:     "ArrowGlacier",
	GrayGlacier:      "GrayGlacier",
	Paris:            "Paris",
	Shanghai:         "Shanghai",
	Cancun:           "Cancun",
	Prague:           "Prague",
	Osaka:            "Osaka",
}

func (f Hardfork) String() string {
	if f < 0 || int(f) >= len(hardforkNames) {
		return "Unknown"
	}
	return hardforkNames[f]
}

// AtLeast reports whether f is other or any fork after it.
func (f Hardfork) AtLeast(other Hardfork) bool {
	return f >= other
}

// Before reports whether f comes strictly before other.
func (f Hardfork) Before(other Hardfork) bool {
	return f < other
}

// HardforkFromString resolves a fork by its canonical name,
// case-insensitively.
func HardforkFromString(s string) (Hardfork, bool) {
	for i, name := range hardforkNames {
		if strings.EqualFold(name, s) {
			return Hardfork(i), true
		}
	}
	return 0, false
}
