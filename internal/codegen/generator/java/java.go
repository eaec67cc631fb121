// Package java holds the Java spelling of the generated property maps:
// Map.ofEntries(...) argument lists, which must not end with a dangling comma.
package java

import (
	"strings"
	"text/template"

	"github.com/yaap/hardware-interfaces/internal/codegen/emit"
	"github.com/yaap/hardware-interfaces/internal/codegen/meta"
)

var Syntax = emit.Syntax{
	Name:              "java",
	Entry:             template.Must(template.New("java-entry").Parse(`Map.entry(VehicleProperty.{{.Name}}, {{.Value}})`)),
	Separator:         ",",
	TrailingSeparator: false,
	Values: map[emit.Field]emit.ValueFunc{
		emit.FieldChangeMode: func(p meta.PropertyRecord) (string, bool) {
			return "VehiclePropertyChangeMode." + p.ChangeMode, p.ChangeMode != ""
		},
		emit.FieldAccessMode: func(p meta.PropertyRecord) (string, bool) {
			if len(p.AccessModes) == 0 {
				return "", false
			}
			return "VehiclePropertyAccess." + p.AccessModes[0], true
		},
		emit.FieldEnumTypes: enumTypes,
		emit.FieldUnitType: func(p meta.PropertyRecord) (string, bool) {
			return p.UnitType, p.HasUnitType()
		},
		emit.FieldVersion: func(p meta.PropertyRecord) (string, bool) {
			return p.Version, p.Version != ""
		},
	},
}

func enumTypes(p meta.PropertyRecord) (string, bool) {
	if !p.HasEnumTypes() {
		return "", false
	}
	classes := make([]string, len(p.EnumTypes))
	for i, t := range p.EnumTypes {
		classes[i] = t + ".class"
	}
	return "List.of(" + strings.Join(classes, ", ") + ")", true
}

const Footer = `
    );

}
`

func classHeader(class, valueType string, imports ...string) string {
	var b strings.Builder
	b.WriteString("package android.hardware.automotive.vehicle;\n\n")
	for _, imp := range imports {
		b.WriteString("import " + imp + ";\n")
	}
	b.WriteString("\npublic final class " + class + " {\n\n")
	b.WriteString("    public static final Map<Integer, " + valueType + "> values = Map.ofEntries(\n")
	return b.String()
}

var (
	ChangeModeHeader = classHeader("ChangeModeForVehicleProperty", "Integer", "java.util.Map")
	AccessHeader     = classHeader("AccessForVehicleProperty", "Integer", "java.util.Map")
	EnumHeader       = classHeader("EnumForVehicleProperty", "List<Class<?>>", "java.util.List", "java.util.Map")
	UnitsHeader      = classHeader("UnitsForVehicleProperty", "Integer", "java.util.Map")
)
