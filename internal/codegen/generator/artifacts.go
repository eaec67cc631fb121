package generator

import (
	"github.com/yaap/hardware-interfaces/internal/codegen/emit"
	"github.com/yaap/hardware-interfaces/internal/codegen/generator/cpp"
	"github.com/yaap/hardware-interfaces/internal/codegen/generator/java"
)

// Kind enumerates the generated property maps.
type Kind int

const (
	KindChangeMode Kind = iota
	KindAccess
	KindEnumTypes
	KindUnits
	KindVersion
)

var kindFields = [...]emit.Field{
	KindChangeMode: emit.FieldChangeMode,
	KindAccess:     emit.FieldAccessMode,
	KindEnumTypes:  emit.FieldEnumTypes,
	KindUnits:      emit.FieldUnitType,
	KindVersion:    emit.FieldVersion,
}

// Field is the annotation the kind maps each property to.
func (k Kind) Field() emit.Field { return kindFields[k] }

func (k Kind) String() string { return string(k.Field()) }

// Target is one output file of an artifact, relative to the generated_lib dir.
type Target struct {
	File   string
	Syntax emit.Syntax
	Header string
	Footer string
}

type Artifact struct {
	Kind    Kind
	Targets []Target
}

// Artifacts returns the fixed table of generated files in emission order.
func Artifacts() []Artifact {
	return []Artifact{
		{
			Kind: KindChangeMode,
			Targets: []Target{
				{File: "cpp/ChangeModeForVehicleProperty.h", Syntax: cpp.Syntax, Header: cpp.ChangeModeHeader, Footer: cpp.Footer},
				{File: "java/ChangeModeForVehicleProperty.java", Syntax: java.Syntax, Header: java.ChangeModeHeader, Footer: java.Footer},
			},
		},
		{
			Kind: KindAccess,
			Targets: []Target{
				{File: "cpp/AccessForVehicleProperty.h", Syntax: cpp.Syntax, Header: cpp.AccessHeader, Footer: cpp.Footer},
				{File: "java/AccessForVehicleProperty.java", Syntax: java.Syntax, Header: java.AccessHeader, Footer: java.Footer},
			},
		},
		{
			Kind: KindEnumTypes,
			Targets: []Target{
				{File: "java/EnumForVehicleProperty.java", Syntax: java.Syntax, Header: java.EnumHeader, Footer: java.Footer},
			},
		},
		{
			Kind: KindUnits,
			Targets: []Target{
				{File: "java/UnitsForVehicleProperty.java", Syntax: java.Syntax, Header: java.UnitsHeader, Footer: java.Footer},
			},
		},
		{
			Kind: KindVersion,
			Targets: []Target{
				{File: "cpp/VersionForVehicleProperty.h", Syntax: cpp.Syntax, Header: cpp.VersionHeader, Footer: cpp.Footer},
			},
		},
	}
}
