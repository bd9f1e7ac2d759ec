package catalog

import (
	"fmt"

	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/errors"
)

const (
	minSetPieces = 2
	maxSetPieces = 6
)

// ValidateEquipment checks an item record in isolation. Set and base references
// are resolved by New.
func ValidateEquipment(raw *RawEquipment) error {
	if raw == nil {
		return errors.InvalidArgument("equipment is required")
	}
	vb := errors.NewValidationBuilder()
	validateEquipment("equipment", raw, vb)
	return vb.Build()
}

// ValidateSet checks a set record in isolation
func ValidateSet(raw *RawSet) error {
	if raw == nil {
		return errors.InvalidArgument("set is required")
	}
	vb := errors.NewValidationBuilder()
	validateSet("set", raw, vb)
	return vb.Build()
}

func validateEquipment(prefix string, raw *RawEquipment, vb *errors.ValidationBuilder) {
	errors.ValidateRequired(prefix+".name", raw.Name, vb)
	errors.ValidateRequired(prefix+".set", raw.Set, vb)

	if _, ok := equipment.SlotFromString(raw.Type); !ok {
		notRecognized(prefix+".type", raw.Type, vb)
	}
	if !equipment.Building(raw.Condition.Building).IsValid() {
		notRecognized(prefix+".condition.building", raw.Condition.Building, vb)
	}

	for i, cost := range raw.Cost {
		if _, ok := equipment.MaterialFromName(cost.Name); !ok {
			notRecognized(fmt.Sprintf("%s.cost[%d].name", prefix, i), cost.Name, vb)
		}
	}

	for i, attr := range raw.Attributes {
		field := fmt.Sprintf("%s.attributes[%d]", prefix, i)
		validateTags(field, attr.Condition, attr.Troop, attr.Type, vb)

		errors.ValidateNonZero(field+".value", attr.Value, vb)
		errors.ValidateNonZero(field+".rate", attr.Rate, vb)
		if attr.Value > 0 && attr.Rate < 0 || attr.Value < 0 && attr.Rate > 0 {
			vb.Field(field, "value and rate do not have the same sign")
		}
	}
}

func validateSet(prefix string, raw *RawSet, vb *errors.ValidationBuilder) {
	errors.ValidateRequired(prefix+".name", raw.Name, vb)

	for i, attr := range raw.Attributes {
		field := fmt.Sprintf("%s.attributes[%d]", prefix, i)
		errors.ValidateRange(field+".pieces", attr.Pieces, minSetPieces, maxSetPieces, vb)
		validateTags(field, attr.Condition, attr.Troop, attr.Type, vb)
		errors.ValidateNonZero(field+".value", attr.Value, vb)
	}
}

func validateTags(field string, conditions, troops []string, kind string, vb *errors.ValidationBuilder) {
	for _, c := range conditions {
		if !equipment.Condition(c).IsValid() {
			notRecognized(field+".condition", c, vb)
		}
	}
	for _, t := range troops {
		if !equipment.Troop(t).IsValid() {
			notRecognized(field+".troop", t, vb)
		}
	}
	if !equipment.AttrKind(kind).IsValid() {
		notRecognized(field+".type", kind, vb)
	}
}

func notRecognized(field, value string, vb *errors.ValidationBuilder) {
	vb.Fieldf(field, "is not recognized: %s", value)
}
