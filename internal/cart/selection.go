package cart

import (
	"sort"
	"strings"
)

// Selection maps a variant group ID to the option IDs chosen in that group.
// An empty (or nil) selection means the product was added without variants.
type Selection map[string][]string

// Clone returns a deep copy of the selection, dropping empty option sets so
// that a group key with no choices never survives normalization.
func (s Selection) Clone() Selection {
	if len(s) == 0 {
		return nil
	}
	out := make(Selection, len(s))
	for gid, opts := range s {
		if len(opts) == 0 {
			continue
		}
		cp := make([]string, len(opts))
		copy(cp, opts)
		out[gid] = cp
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Equal reports whether two selections are structurally equal: same groups,
// same option sets per group, regardless of map iteration or slice order.
// Line identity in the cart is decided by this comparison, never by comparing
// an arbitrary serialization.
func (s Selection) Equal(other Selection) bool {
	return s.key() == other.key()
}

// key builds a canonical encoding: group IDs sorted, option IDs sorted
// within each group. Groups with empty option sets are skipped.
func (s Selection) key() string {
	if len(s) == 0 {
		return ""
	}
	groups := make([]string, 0, len(s))
	for gid, opts := range s {
		if len(opts) > 0 {
			groups = append(groups, gid)
		}
	}
	sort.Strings(groups)

	var b strings.Builder
	for i, gid := range groups {
		if i > 0 {
			b.WriteByte(';')
		}
		opts := make([]string, len(s[gid]))
		copy(opts, s[gid])
		sort.Strings(opts)
		b.WriteString(gid)
		b.WriteByte('=')
		b.WriteString(strings.Join(opts, ","))
	}
	return b.String()
}

// count returns the number of options selected in the given group.
func (s Selection) count(groupID string) int {
	return len(s[groupID])
}

// contains reports whether the option is selected in the given group.
func (s Selection) contains(groupID, optionID string) bool {
	for _, id := range s[groupID] {
		if id == optionID {
			return true
		}
	}
	return false
}
