package catalog

import "github.com/KirkDiggler/general-configurator/internal/entities/equipment"

// RawCatalog is the on-disk catalog document, JSON or YAML
type RawCatalog struct {
	Sets       []RawSet       `json:"sets" yaml:"sets" jsonschema:"description=Equipment sets with their set bonuses"`
	Equipments []RawEquipment `json:"equipments" yaml:"equipments" jsonschema:"description=Every craftable item"`
}

// RawSet is a set record before cross-linking
type RawSet struct {
	Name       string            `json:"name" yaml:"name" jsonschema:"title=Set name"`
	Order      int               `json:"order" yaml:"order" jsonschema:"description=Unique display order. 50 and above marks a civilization set"`
	Attributes []RawSetAttribute `json:"attributes" yaml:"attributes"`
}

// RawSetAttribute is a set bonus record
type RawSetAttribute struct {
	Pieces    int      `json:"pieces" yaml:"pieces" jsonschema:"minimum=2,maximum=6"`
	Condition []string `json:"condition" yaml:"condition" jsonschema:"enum=in-city,enum=attacking,enum=defending,enum=marching,enum=reinforcing,enum=w/dragon"`
	Troop     []string `json:"troop" yaml:"troop" jsonschema:"enum=ground,enum=mounted,enum=ranged,enum=siege"`
	Type      string   `json:"type" yaml:"type" jsonschema:"enum=attack,enum=defense,enum=hp,enum=range,enum=marchsize"`
	Value     float64  `json:"value" yaml:"value"`
}

// RawEquipment is an item record before cross-linking. Set and base are names.
type RawEquipment struct {
	Name       string                   `json:"name" yaml:"name" jsonschema:"title=Item name,description=Unique across the catalog"`
	Set        string                   `json:"set" yaml:"set"`
	Type       string                   `json:"type" yaml:"type" jsonschema:"enum=weapon,enum=armor,enum=boots,enum=helmet,enum=legarmor,enum=ring"`
	Condition  RawCondition             `json:"condition" yaml:"condition"`
	Cost       []equipment.MaterialCost `json:"cost" yaml:"cost"`
	Attributes []RawAttribute           `json:"attributes" yaml:"attributes"`
	Verified   *bool                    `json:"verified,omitempty" yaml:"verified,omitempty"`
}

// RawCondition is where an item is crafted and what it is upgraded from
type RawCondition struct {
	Building string  `json:"building" yaml:"building" jsonschema:"enum=forge,enum=wonder"`
	Level    int     `json:"level" yaml:"level"`
	Scroll   string  `json:"scroll,omitempty" yaml:"scroll,omitempty"`
	Base     *string `json:"base" yaml:"base" jsonschema:"description=Name of the item this one is upgraded from"`
}

// RawAttribute is an item attribute record
type RawAttribute struct {
	Condition []string `json:"condition" yaml:"condition" jsonschema:"enum=in-city,enum=attacking,enum=defending,enum=marching,enum=reinforcing,enum=w/dragon"`
	Troop     []string `json:"troop" yaml:"troop" jsonschema:"enum=ground,enum=mounted,enum=ranged,enum=siege"`
	Type      string   `json:"type" yaml:"type" jsonschema:"enum=attack,enum=defense,enum=hp,enum=range,enum=marchsize"`
	Value     float64  `json:"value" yaml:"value"`
	Rate      float64  `json:"rate" yaml:"rate"`
}
