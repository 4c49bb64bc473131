package nbt

import "strings"

// EmptySlot is the placeholder emitted for a missing or unbalanced slot.
const EmptySlot = "{}"

// Slot orderings match the entity equipment NBT layout: ArmorItems runs
// feet to head, HandItems runs mainhand to offhand.
var (
	ArmorSlots = [4]string{"feet", "legs", "chest", "head"}
	HandSlots  = [2]string{"mainhand", "offhand"}
)

// Equipment holds the raw per-slot fragments extracted from one sheet cell.
// Present slots carry the content between their braces; absent or malformed
// slots carry EmptySlot.
type Equipment struct {
	Armor [4]string
	Hands [2]string
}

// ExtractEquipment normalizes raw and pulls out the balanced-brace fragment
// for each known slot. Each slot is located by its own search over the whole
// normalized string, so declaration order and overlap in the input do not
// matter. Malformed input never fails; it degrades to EmptySlot per slot.
func ExtractEquipment(raw string) Equipment {
	s := Normalize(raw)

	var eq Equipment
	for i, slot := range ArmorSlots {
		eq.Armor[i] = extractSlot(s, slot)
	}
	for i, slot := range HandSlots {
		eq.Hands[i] = extractSlot(s, slot)
	}
	return eq
}

func extractSlot(s, slot string) string {
	idx := strings.Index(s, slot+":{")
	if idx < 0 {
		return EmptySlot
	}
	inner, ok := ScanBalanced(s, idx+len(slot)+1, '{', '}')
	if !ok {
		return EmptySlot
	}
	return inner
}
