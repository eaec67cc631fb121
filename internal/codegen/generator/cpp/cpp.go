// Package cpp holds the C++ spelling of the generated property maps:
// std::unordered_map initializer lists in which every entry ends with a comma.
package cpp

import (
	"text/template"

	"github.com/yaap/hardware-interfaces/internal/codegen/emit"
	"github.com/yaap/hardware-interfaces/internal/codegen/meta"
)

var Syntax = emit.Syntax{
	Name:              "cpp",
	Entry:             template.Must(template.New("cpp-entry").Parse(`{VehicleProperty::{{.Name}}, {{.Value}}}`)),
	Separator:         ",",
	TrailingSeparator: true,
	Values: map[emit.Field]emit.ValueFunc{
		emit.FieldChangeMode: func(p meta.PropertyRecord) (string, bool) {
			return "VehiclePropertyChangeMode::" + p.ChangeMode, p.ChangeMode != ""
		},
		emit.FieldAccessMode: func(p meta.PropertyRecord) (string, bool) {
			if len(p.AccessModes) == 0 {
				return "", false
			}
			return "VehiclePropertyAccess::" + p.AccessModes[0], true
		},
		emit.FieldVersion: func(p meta.PropertyRecord) (string, bool) {
			return p.Version, p.Version != ""
		},
	},
}

const Footer = `
};

}  // namespace vehicle
}  // namespace automotive
}  // namespace hardware
}  // namespace android
}  // aidl
`

const namespaceOpen = `
namespace aidl {
namespace android {
namespace hardware {
namespace automotive {
namespace vehicle {

`

const ChangeModeHeader = `#pragma once

#include <aidl/android/hardware/automotive/vehicle/VehicleProperty.h>
#include <aidl/android/hardware/automotive/vehicle/VehiclePropertyChangeMode.h>

#include <unordered_map>
` + namespaceOpen + `std::unordered_map<VehicleProperty, VehiclePropertyChangeMode> ChangeModeForVehicleProperty = {
`

const AccessHeader = `#pragma once

#include <aidl/android/hardware/automotive/vehicle/VehicleProperty.h>
#include <aidl/android/hardware/automotive/vehicle/VehiclePropertyAccess.h>

#include <unordered_map>
` + namespaceOpen + `std::unordered_map<VehicleProperty, VehiclePropertyAccess> AccessForVehicleProperty = {
`

const VersionHeader = `#pragma once

#include <aidl/android/hardware/automotive/vehicle/VehicleProperty.h>

#include <unordered_map>
` + namespaceOpen + `std::unordered_map<VehicleProperty, int32_t> VersionForVehicleProperty = {
`
