package equipment

import "strings"

// Material is one of the twelve crafting materials. The value is its column index.
type Material int

// Materials in their canonical column order
const (
	MaterialPurpleCrystal Material = iota
	MaterialBlueStone
	MaterialRedAgate
	MaterialSilverPearl
	MaterialMeteorolite
	MaterialIron
	MaterialBronze
	MaterialWood
	MaterialAnimalBone
	MaterialLeather
	MaterialFeather
	MaterialDragonScale
)

// MaterialCount is the number of canonical materials
const MaterialCount = 12

var materialNames = [MaterialCount]string{
	"purple crystal",
	"blue stone",
	"red agate",
	"silver pearl",
	"meteorolite",
	"iron",
	"bronze",
	"wood",
	"animal bone",
	"leather",
	"feather",
	"dragon scale",
}

// spellings lists every accepted lower-case spelling: full, concatenated, short
var spellings = []struct {
	name     string
	material Material
}{
	{"purple crystal", MaterialPurpleCrystal},
	{"purplecrystal", MaterialPurpleCrystal},
	{"crystal", MaterialPurpleCrystal},
	{"blue stone", MaterialBlueStone},
	{"bluestone", MaterialBlueStone},
	{"stone", MaterialBlueStone},
	{"red agate", MaterialRedAgate},
	{"redagate", MaterialRedAgate},
	{"agate", MaterialRedAgate},
	{"silver pearl", MaterialSilverPearl},
	{"silverpearl", MaterialSilverPearl},
	{"pearl", MaterialSilverPearl},
	{"meteorolite", MaterialMeteorolite},
	{"meteor", MaterialMeteorolite},
	{"iron", MaterialIron},
	{"bronze", MaterialBronze},
	{"wood", MaterialWood},
	{"animal bone", MaterialAnimalBone},
	{"animalbone", MaterialAnimalBone},
	{"bone", MaterialAnimalBone},
	{"leather", MaterialLeather},
	{"feather", MaterialFeather},
	{"dragon scale", MaterialDragonScale},
	{"dragonscale", MaterialDragonScale},
	{"scale", MaterialDragonScale},
}

var materialSpellings = func() map[string]Material {
	m := make(map[string]Material, len(spellings))
	for _, sp := range spellings {
		m[sp.name] = sp.material
	}
	return m
}()

// String returns the canonical name of the material
func (m Material) String() string {
	if !m.IsValid() {
		return "unknown"
	}
	return materialNames[m]
}

// IsValid checks if the material is one of the canonical twelve
func (m Material) IsValid() bool {
	return m >= 0 && m < MaterialCount
}

// MaterialFromName resolves any accepted spelling, ignoring case
func MaterialFromName(name string) (Material, bool) {
	m, ok := materialSpellings[strings.ToLower(name)]
	return m, ok
}

// AllMaterials returns the materials in column order
func AllMaterials() []Material {
	out := make([]Material, MaterialCount)
	for i := range out {
		out[i] = Material(i)
	}
	return out
}

// MaterialSpellings returns every accepted spelling in column order
func MaterialSpellings() []string {
	out := make([]string, len(spellings))
	for i, sp := range spellings {
		out[i] = sp.name
	}
	return out
}
