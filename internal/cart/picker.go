package cart

import "github.com/xilang-pos/api/internal/catalog"

// Picker builds a variant selection for one product before it is added to
// the cart. It mirrors the selection dialog: single-select groups replace
// the previous choice, multi-select groups toggle options up to the group
// cap, and the confirm action stays disabled until Complete reports true.
type Picker struct {
	product *catalog.Product
	sel     Selection
}

// NewPicker starts an empty selection for the product.
func NewPicker(p *catalog.Product) *Picker {
	return &Picker{product: p, sel: Selection{}}
}

// Toggle flips the option in the given group. For single-select groups the
// new option replaces the old one; once a single-select group is touched it
// cannot be emptied again, only changed. For multi-select groups a selected
// option is removed, an unselected one is added unless the group is already
// at its cap, in which case the tap is silently ignored. Unknown group or
// option IDs are ignored.
func (pk *Picker) Toggle(groupID, optionID string) {
	group, ok := pk.product.Group(groupID)
	if !ok {
		return
	}
	if _, ok := group.Option(optionID); !ok {
		return
	}

	if group.MaxSelect == 1 {
		pk.sel[groupID] = []string{optionID}
		return
	}

	cur := pk.sel[groupID]
	for i, id := range cur {
		if id == optionID {
			next := append(append([]string(nil), cur[:i]...), cur[i+1:]...)
			if len(next) == 0 {
				delete(pk.sel, groupID)
			} else {
				pk.sel[groupID] = next
			}
			return
		}
	}
	if len(cur) >= group.MaxSelect {
		return
	}
	pk.sel[groupID] = append(cur, optionID)
}

// Selected reports whether the option is currently chosen.
func (pk *Picker) Selected(groupID, optionID string) bool {
	return pk.sel.contains(groupID, optionID)
}

// Complete reports whether every required group has at least its minimum
// number of selections, i.e. whether confirm may proceed.
func (pk *Picker) Complete() bool {
	for i := range pk.product.VariantGroups {
		g := &pk.product.VariantGroups[i]
		if g.Required && pk.sel.count(g.ID) < g.MinSelect {
			return false
		}
	}
	return true
}

// Selection returns a copy of the selection built so far.
func (pk *Picker) Selection() Selection {
	return pk.sel.Clone()
}
