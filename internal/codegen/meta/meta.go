package meta

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PropertyRecord holds the annotations scanned from the doc comment of a
// single VehicleProperty enum entry.
type PropertyRecord struct {
	Name        string   `json:"name" yaml:"name" toml:"name" validate:"required"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Comment     string   `json:"comment,omitempty" yaml:"comment,omitempty" toml:"comment,omitempty"`
	ChangeMode  string   `json:"changeMode" yaml:"changeMode" toml:"changeMode" validate:"required"`
	AccessModes []string `json:"accessModes" yaml:"accessModes" toml:"accessModes" validate:"required,min=1,dive,required"`
	EnumTypes   []string `json:"enumTypes,omitempty" yaml:"enumTypes,omitempty" toml:"enumTypes,omitempty" validate:"dive,required"`
	UnitType    string   `json:"unitType,omitempty" yaml:"unitType,omitempty" toml:"unitType,omitempty"`
	Version     string   `json:"version" yaml:"version" toml:"version" validate:"required"`
}

// Metadata holds all scanned information needed for code generation.
// Shared between the generator orchestrator, the exporters and the syntax packages.
type Metadata struct {
	Source     string           `json:"source" yaml:"source" toml:"source"`
	Properties []PropertyRecord `json:"properties" yaml:"properties" toml:"property" validate:"dive"`
}

// Validate re-checks the record invariants before anything is rendered.
// The scanner enforces the same rules, so this only trips on records that
// were assembled by hand.
func (m *Metadata) Validate() error {
	validate := validator.New()
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("invalid property metadata: %w", err)
	}

	seen := make(map[string]struct{}, len(m.Properties))
	for _, p := range m.Properties {
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("invalid property metadata: duplicate property %s", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

// HasEnumTypes reports whether the property references at least one data enum.
func (p PropertyRecord) HasEnumTypes() bool { return len(p.EnumTypes) > 0 }

// HasUnitType reports whether the property declares a unit.
func (p PropertyRecord) HasUnitType() bool { return p.UnitType != "" }
