package entities

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
)

// BuffKey identifies one of the twelve troop and stat combinations
type BuffKey int

// Buff fields in display order
const (
	GroundAttack BuffKey = iota
	GroundDefense
	GroundHp
	MountedAttack
	MountedDefense
	MountedHp
	RangedAttack
	RangedDefense
	RangedHp
	SiegeAttack
	SiegeDefense
	SiegeHp
)

// BuffKeyCount is the number of buff fields
const BuffKeyCount = 12

var buffKeyNames = [BuffKeyCount]string{
	"groundAttack",
	"groundDefense",
	"groundHp",
	"mountedAttack",
	"mountedDefense",
	"mountedHp",
	"rangedAttack",
	"rangedDefense",
	"rangedHp",
	"siegeAttack",
	"siegeDefense",
	"siegeHp",
}

// String returns the field name, e.g. groundAttack
func (k BuffKey) String() string {
	if !k.IsValid() {
		return "unknown"
	}
	return buffKeyNames[k]
}

// IsValid checks if the key is one of the twelve fields
func (k BuffKey) IsValid() bool {
	return k >= 0 && k < BuffKeyCount
}

// Troop returns the troop type of the field
func (k BuffKey) Troop() equipment.Troop {
	return equipment.AllTroops()[int(k)/3]
}

// Kind returns the stat kind of the field
func (k BuffKey) Kind() equipment.AttrKind {
	return equipment.CombatKinds()[int(k)%3]
}

// AllBuffKeys returns every field in display order
func AllBuffKeys() []BuffKey {
	out := make([]BuffKey, BuffKeyCount)
	for i := range out {
		out[i] = BuffKey(i)
	}
	return out
}

// BuffKeyFor maps a troop type and stat kind to its field. Non-combat kinds have no field.
func BuffKeyFor(troop equipment.Troop, kind equipment.AttrKind) (BuffKey, bool) {
	var t int
	switch troop {
	case equipment.TroopGround:
		t = 0
	case equipment.TroopMounted:
		t = 1
	case equipment.TroopRanged:
		t = 2
	case equipment.TroopSiege:
		t = 3
	default:
		return 0, false
	}

	var k int
	switch kind {
	case equipment.KindAttack:
		k = 0
	case equipment.KindDefense:
		k = 1
	case equipment.KindHp:
		k = 2
	default:
		return 0, false
	}
	return BuffKey(t*3 + k), true
}

// BuffKeyFromString converts a field name back to its key
func BuffKeyFromString(s string) (BuffKey, bool) {
	for i, name := range buffKeyNames {
		if name == s {
			return BuffKey(i), true
		}
	}
	return 0, false
}

// BuffVector holds a percentage per buff field. The zero value is all zeros.
type BuffVector [BuffKeyCount]float64

// Get returns the value of a field
func (v BuffVector) Get(k BuffKey) float64 {
	if !k.IsValid() {
		return 0
	}
	return v[k]
}

// Add accumulates delta into a field
func (v *BuffVector) Add(k BuffKey, delta float64) {
	if !k.IsValid() {
		return
	}
	v[k] += delta
}

// Set overwrites a field
func (v *BuffVector) Set(k BuffKey, value float64) {
	if !k.IsValid() {
		return
	}
	v[k] = value
}

// Merge returns the field-wise sum of both vectors
func (v BuffVector) Merge(other BuffVector) BuffVector {
	for i := range v {
		v[i] += other[i]
	}
	return v
}

// IsZero reports whether every field is zero
func (v BuffVector) IsZero() bool {
	return v == BuffVector{}
}

// Total sums one stat kind across troop types, skipping excluded troops
func (v BuffVector) Total(kind equipment.AttrKind, excluded ...equipment.Troop) float64 {
	var sum float64
	for _, troop := range equipment.AllTroops() {
		if containsTroop(excluded, troop) {
			continue
		}
		if k, ok := BuffKeyFor(troop, kind); ok {
			sum += v[k]
		}
	}
	return sum
}

// Map returns the vector keyed by field name
func (v BuffVector) Map() map[string]float64 {
	out := make(map[string]float64, BuffKeyCount)
	for i, name := range buffKeyNames {
		out[name] = v[i]
	}
	return out
}

// MarshalJSON renders the vector as an object with fields in display order
func (v BuffVector) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range buffKeyNames {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(name))
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(v[i], 'f', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keyed by field name. Unknown fields are ignored.
func (v *BuffVector) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*v = BuffVector{}
	for name, value := range m {
		if k, ok := BuffKeyFromString(name); ok {
			v[k] = value
		}
	}
	return nil
}

func containsTroop(troops []equipment.Troop, t equipment.Troop) bool {
	for _, v := range troops {
		if v == t {
			return true
		}
	}
	return false
}
