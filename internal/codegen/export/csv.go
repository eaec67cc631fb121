package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaap/hardware-interfaces/internal/codegen/meta"
)

const (
	csvHeader   = "name,description,change mode,access mode,enum type,unit type,comment\n"
	placeholder = "/"
)

// WriteCSV writes one quoted row per property. The comment column is
// preceded by ", " to stay compatible with the layout the docs tooling
// already consumes.
func WriteCSV(w io.Writer, props []meta.PropertyRecord) error {
	if _, err := io.WriteString(w, csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range props {
		enumTypes := placeholder
		if p.HasEnumTypes() {
			enumTypes = strings.Join(p.EnumTypes, "/")
		}
		unitType := placeholder
		if p.HasUnitType() {
			unitType = p.UnitType
		}

		row := fmt.Sprintf("%s,%s,%s,%s,%s,%s, %s\n",
			quote(p.Name),
			quote(p.Description),
			quote(p.ChangeMode),
			quote(strings.Join(p.AccessModes, "/")),
			quote(enumTypes),
			quote(unitType),
			quote(p.Comment))
		if _, err := io.WriteString(w, row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", p.Name, err)
		}
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
