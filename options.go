/*
 * options.go, part of gosubstrate
 *
 * Copyright 2026 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package substrate

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml"
)

// TrimPolicy decides when a residue straddling the border of a volume is kept.
type TrimPolicy int

const (
	// AnyAtom keeps a residue only if all its atoms are inside the volume.
	AnyAtom TrimPolicy = iota
	// Centroid keeps a residue if its geometric center is inside the volume.
	Centroid
)

func (T TrimPolicy) String() string {
	switch T {
	case AnyAtom:
		return "any-atom"
	case Centroid:
		return "centroid"
	}
	return fmt.Sprintf("TrimPolicy(%d)", int(T))
}

// ParseTrimPolicy reads a policy from its name. The empty string gives AnyAtom.
func ParseTrimPolicy(s string) (TrimPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any-atom", "anyatom", "any":
		return AnyAtom, nil
	case "centroid":
		return Centroid, nil
	}
	return AnyAtom, Errorf(ErrInvalidComponent, "ParseTrimPolicy", "unknown trimming policy %q", s)
}

// Options contains options for building systems.
type Options struct {
	cpus int
	seed uint64
	trim TrimPolicy
}

// DefaultOptions returns an Options with the default values: one build per
// CPU, seed 1 and the AnyAtom trimming policy.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cpus = runtime.NumCPU()
	ret.seed = 1
	ret.trim = AnyAtom
	return ret
}

// Cpus sets the maximum number of components built at the same time, if
// a positive value is given. It returns the previous value.
func (O *Options) Cpus(cpus ...int) int {
	ret := O.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		O.cpus = cpus[0]
	}
	return ret
}

// Seed sets the seed for the random numbers used in rough sheets, if given.
// It returns the previous value.
func (O *Options) Seed(seed ...uint64) uint64 {
	ret := O.seed
	if len(seed) > 0 {
		O.seed = seed[0]
	}
	return ret
}

// TrimPolicy sets the trimming policy for volume components, if given.
// It returns the previous value.
func (O *Options) TrimPolicy(policy ...TrimPolicy) TrimPolicy {
	ret := O.trim
	if len(policy) > 0 {
		O.trim = policy[0]
	}
	return ret
}

// NewRand returns a random number generator fully determined by seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Rand returns a generator for the ith component of a build. Different
// components get independent streams, and the same seed and index always
// give the same stream.
func (O *Options) Rand(i int) *rand.Rand {
	return NewRand(O.seed + uint64(i)*0x2545f4914f6cdd1d)
}

type optionsFile struct {
	Cpus int    `toml:"cpus"`
	Seed int64  `toml:"seed"`
	Trim string `toml:"trim"`
}

// LoadOptions reads Options from a TOML file. Keys not present in the
// file keep their default value. Recognized keys: cpus, seed and trim
// ("any-atom" or "centroid").
func LoadOptions(path string) (*Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Errorf(ErrConfig, "LoadOptions", "%s", err)
	}
	defer f.Close()
	var conf optionsFile
	if err := toml.NewDecoder(f).Decode(&conf); err != nil {
		return nil, Errorf(ErrConfig, "LoadOptions", "reading options from %s: %s", path, err)
	}
	o := DefaultOptions()
	o.Cpus(conf.Cpus)
	if conf.Seed != 0 {
		o.Seed(uint64(conf.Seed))
	}
	policy, err := ParseTrimPolicy(conf.Trim)
	if err != nil {
		log.Printf("LoadOptions: %s, using %v", err, policy)
	}
	o.TrimPolicy(policy)
	return o, nil
}
