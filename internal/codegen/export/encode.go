package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/yaap/hardware-interfaces/internal/codegen/meta"
)

// Formats accepted by Encode.
var Formats = []string{"json", "yaml", "toml"}

// NormalizeFormat maps user spellings onto one of Formats, or "" when unknown.
func NormalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// Encode writes the scanned metadata in the requested structured format.
func Encode(w io.Writer, format string, md *meta.Metadata) error {
	var (
		data []byte
		err  error
	)
	switch NormalizeFormat(format) {
	case "json":
		data, err = json.MarshalIndent(md, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(md)
	case "toml":
		data, err = toml.Marshal(*md)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}
