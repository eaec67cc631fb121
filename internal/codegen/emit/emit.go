// Package emit renders property metadata into fixed-template source files.
//
// A Syntax describes how one target language spells a map entry, a Template
// supplies the header and footer of one output file, and Render glues them
// together. Rendering never consults the clock or iterates maps, so the same
// records always produce byte-identical output.
package emit

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/yaap/hardware-interfaces/internal/codegen/common"
	"github.com/yaap/hardware-interfaces/internal/codegen/meta"
)

// Field selects which annotation an output file maps each property to.
type Field string

const (
	FieldChangeMode Field = "change_mode"
	FieldAccessMode Field = "access_mode"
	FieldEnumTypes  Field = "enum_types"
	FieldUnitType   Field = "unit_type"
	FieldVersion    Field = "version"
)

// Fields lists every selector in emission order of the artifact table.
var Fields = []Field{FieldChangeMode, FieldAccessMode, FieldEnumTypes, FieldUnitType, FieldVersion}

// Optional reports whether properties lacking the field are left out of the output.
func (f Field) Optional() bool {
	return f == FieldEnumTypes || f == FieldUnitType
}

// ValueFunc renders the value side of one map entry. It returns false when the
// property has nothing to contribute for the field.
type ValueFunc func(p meta.PropertyRecord) (string, bool)

// Syntax describes how one target language spells the generated map entries.
type Syntax struct {
	Name string
	// Entry renders a single entry; it receives an Entry value.
	Entry *template.Template
	// Separator terminates each entry.
	Separator string
	// TrailingSeparator keeps the separator after the final entry.
	TrailingSeparator bool
	Values            map[Field]ValueFunc
}

// Entry is the data handed to Syntax.Entry.
type Entry struct {
	Name  string
	Value string
}

// Template is one output file's fixed boilerplate.
type Template struct {
	Field  Field
	Header string
	Footer string
}

const indent = "        "

// Render produces license + header + one line per qualifying property + footer.
func Render(props []meta.PropertyRecord, syntax Syntax, tmpl Template) (string, error) {
	value, ok := syntax.Values[tmpl.Field]
	if !ok {
		return "", fmt.Errorf("%s output does not support field %q", syntax.Name, tmpl.Field)
	}

	var lines []string
	var buf bytes.Buffer
	for _, p := range props {
		v, ok := value(p)
		if !ok {
			if tmpl.Field.Optional() {
				continue
			}
			return "", fmt.Errorf("property %s has no %s", p.Name, tmpl.Field)
		}
		buf.Reset()
		if err := syntax.Entry.Execute(&buf, Entry{Name: p.Name, Value: v}); err != nil {
			return "", fmt.Errorf("render %s entry for %s: %w", syntax.Name, p.Name, err)
		}
		lines = append(lines, indent+buf.String())
	}

	var out strings.Builder
	out.WriteString(common.LicensePreamble)
	out.WriteString(tmpl.Header)
	for i, l := range lines {
		if i > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(l)
		if syntax.TrailingSeparator || i < len(lines)-1 {
			out.WriteString(syntax.Separator)
		}
	}
	out.WriteString(tmpl.Footer)
	return out.String(), nil
}
