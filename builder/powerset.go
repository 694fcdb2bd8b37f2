package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/velkov/ordlat/order"
)

// maxPowerSetLabels caps the powerset carrier at 2^16 elements.
const maxPowerSetLabels = 16

// PowerSet builds the lattice of all subsets of the label set under
// inclusion. Elements are canonical SubsetID strings; the enumeration
// runs the empty set first, then subsets in bitmask order over the
// sorted labels. Labels must be unique, non-empty and free of the
// characters used by SubsetID.
//
// Time Complexity: O(k·2^k) for k labels.
func PowerSet(labels []string) (*order.Poset[string], error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("builder: PowerSet: %w", ErrTooFewElements)
	}
	if len(labels) > maxPowerSetLabels {
		return nil, fmt.Errorf("builder: PowerSet: %d labels exceeds %d: %w",
			len(labels), maxPowerSetLabels, ErrBadSize)
	}
	sorted := append([]string(nil), labels...)
	sort.Strings(sorted)
	seen := make(map[string]struct{}, len(sorted))
	for _, l := range sorted {
		if l == "" || strings.ContainsAny(l, "{},") {
			return nil, fmt.Errorf("builder: PowerSet: %q: %w", l, ErrBadLabel)
		}
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("builder: PowerSet: duplicate %q: %w", l, ErrBadLabel)
		}
		seen[l] = struct{}{}
	}

	k := len(sorted)
	elems := make([]string, 0, 1<<k)
	ids := make([]string, 1<<k)
	for mask := 0; mask < 1<<k; mask++ {
		var members []string
		for b := 0; b < k; b++ {
			if mask&(1<<b) != 0 {
				members = append(members, sorted[b])
			}
		}
		ids[mask] = SubsetID(members)
		elems = append(elems, ids[mask])
	}

	// Covers add exactly one label.
	var covers [][2]string
	for mask := 0; mask < 1<<k; mask++ {
		for b := 0; b < k; b++ {
			if mask&(1<<b) == 0 {
				covers = append(covers, [2]string{ids[mask], ids[mask|1<<b]})
			}
		}
	}

	return order.FromCovers(elems, covers)
}
