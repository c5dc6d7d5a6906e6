package framework

import (
	"fmt"

	"github.com/Hackerago/dotnetpath/internal/pe"
)

// Resolve runs the tiered best-match search for a requested
// (major, minor, bitness). Tiers, each tried at the requested bitness
// and then the alternate bitness before moving on:
//
//  1. matching major, best minor by the distance heuristic, with an
//     immediate win for an exact minor carrying the primary runtime
//  2. matching major only, preferring the primary runtime
//  3. matching bitness only, preferring the primary runtime
//
// Every tier scans from the highest-sorted group backward, so the
// newest install is first-seen in tie situations. The second return
// is false when no installed runtime satisfies the request; that is a
// normal outcome, not an error.
//
// bitness must be Bitness32 or Bitness64; anything else is a caller
// bug and panics.
func (x *Index) Resolve(major, minor uint32, bitness pe.Bitness) (*Group, bool) {
	if !bitness.Valid() {
		panic(fmt.Sprintf("framework: Resolve called with invalid bitness %d", bitness))
	}

	order := [2]pe.Bitness{bitness, bitness.Other()}
	for _, b := range order {
		if g := x.resolveMinor(major, minor, b); g != nil {
			return g, true
		}
	}
	for _, b := range order {
		if g := x.resolveMajor(major, b); g != nil {
			return g, true
		}
	}
	for _, b := range order {
		if g := x.resolveBitness(b); g != nil {
			return g, true
		}
	}
	return nil, false
}

// resolveMinor is tier 1. An exact minor with the primary runtime
// wins outright. Otherwise the scan keeps the group closest to the
// requested minor; an exact minor has distance zero, so when one
// exists it is the tier's answer even without the primary flag.
func (x *Index) resolveMinor(major, minor uint32, b pe.Bitness) *Group {
	var best *Group
	for i := len(x.groups) - 1; i >= 0; i-- {
		g := x.groups[i]
		if g.Bitness != b || g.Version.Major != major {
			continue
		}
		if g.Version.Minor == minor && g.HasDotNetAppPath {
			return g
		}
		best = bestMinor(minor, g, best)
	}
	return best
}

// resolveMajor is tier 2: any group of the major, primary runtime
// first, else the first-seen (newest) group.
func (x *Index) resolveMajor(major uint32, b pe.Bitness) *Group {
	var fallback *Group
	for i := len(x.groups) - 1; i >= 0; i-- {
		g := x.groups[i]
		if g.Bitness != b || g.Version.Major != major {
			continue
		}
		if g.HasDotNetAppPath {
			return g
		}
		if fallback == nil {
			fallback = g
		}
	}
	return fallback
}

// resolveBitness is tier 3: any group of the bitness, same preference
// policy as tier 2.
func (x *Index) resolveBitness(b pe.Bitness) *Group {
	var fallback *Group
	for i := len(x.groups) - 1; i >= 0; i-- {
		g := x.groups[i]
		if g.Bitness != b {
			continue
		}
		if g.HasDotNetAppPath {
			return g
		}
		if fallback == nil {
			fallback = g
		}
	}
	return fallback
}

// bestMinor keeps whichever of candidate and incumbent sits closer to
// the requested minor. Equal distance prefers a stable release over a
// prerelease, and otherwise keeps the incumbent (the higher-sorted
// group, since the scan runs backward).
func bestMinor(requested uint32, candidate, incumbent *Group) *Group {
	if incumbent == nil {
		return candidate
	}
	cd := minorDistance(candidate.Version.Minor, requested)
	id := minorDistance(incumbent.Version.Minor, requested)
	switch {
	case cd < id:
		return candidate
	case cd > id:
		return incumbent
	case incumbent.Version.IsPrerelease() && !candidate.Version.IsPrerelease():
		return candidate
	default:
		return incumbent
	}
}

// belowPenalty pushes every minor below the request past every minor
// at or above it, while keeping each side monotonic in closeness.
const belowPenalty = uint64(1) << 32

func minorDistance(minor, requested uint32) uint64 {
	if minor >= requested {
		return uint64(minor - requested)
	}
	return uint64(requested-minor) + belowPenalty
}
