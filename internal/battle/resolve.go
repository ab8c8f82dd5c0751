package battle

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slots is a warlord's resolved tactic per slot, slot 1 first. An empty
// string means the slot is unavailable.
type Slots [SlotCount]string

// ResolveSlot returns the strongest tactic in slot available to a warlord
// with the given intelligence and level, or "" if none qualifies.
//
// A tactic qualifies when both its thresholds are met. Among qualifying
// tactics the highest MinLevel wins, then the highest MinIntelligence, then
// the smallest name.
func (tb *Table) ResolveSlot(intelligence, level, slot int) string {
	var best *Tactic
	for i := range tb.tactics {
		t := &tb.tactics[i]
		if t.Slot != slot || t.MinIntelligence > intelligence || t.MinLevel > level {
			continue
		}
		if best == nil || stronger(t, best) {
			best = t
		}
	}
	if best == nil {
		return ""
	}
	return best.Name
}

func stronger(a, b *Tactic) bool {
	if a.MinLevel != b.MinLevel {
		return a.MinLevel > b.MinLevel
	}
	if a.MinIntelligence != b.MinIntelligence {
		return a.MinIntelligence > b.MinIntelligence
	}
	return a.Name < b.Name
}

// ResolveAll resolves slots 1 through 6 in order.
func (tb *Table) ResolveAll(intelligence, level int) Slots {
	var s Slots
	for i := range s {
		s[i] = tb.ResolveSlot(intelligence, level, i+1)
	}
	return s
}

// PrettyWidth is the display width of a tactic name in the status menu.
const PrettyWidth = 10

// Pretty formats a tactic name for the status menu: title case, spaces
// shown as '~', padded with '~' to PrettyWidth.
func Pretty(name string) string {
	s := strings.ReplaceAll(cases.Title(language.Und).String(name), " ", "~")
	if n := len([]rune(s)); n < PrettyWidth {
		s += strings.Repeat("~", PrettyWidth-n)
	}
	return s
}

// Pretty formats every slot with Pretty.
func (s Slots) Pretty() [SlotCount]string {
	var out [SlotCount]string
	for i, name := range s {
		out[i] = Pretty(name)
	}
	return out
}
