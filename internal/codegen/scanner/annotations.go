package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/yaap/hardware-interfaces/internal/codegen/meta"
)

// SkipPropertyName is the sentinel enum entry that never becomes a record.
const SkipPropertyName = "INVALID"

const (
	changeModePrefix = "VehiclePropertyChangeMode."
	accessPrefix     = "VehiclePropertyAccess."
)

var (
	ErrMissingChangeMode = errors.New("no change_mode annotation")
	ErrMissingAccess     = errors.New("no access annotation")
	ErrMissingVersion    = errors.New("no version annotation")
	ErrDuplicateVersion  = errors.New("duplicate version annotation")
)

// ParseError reports an annotation problem for one enum entry.
type ParseError struct {
	Entry string // enum value name
	Line  int    // 1-based line of the offending annotation or declaration
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v for property: %s", e.Line, e.Err, e.Entry)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	enumStartPattern    = regexp.MustCompile(`^\s*enum VehicleProperty \{`)
	enumEndPattern      = regexp.MustCompile(`^\s*\};`)
	commentBeginPattern = regexp.MustCompile(`^\s*/\*\*?`)
	commentEndPattern   = regexp.MustCompile(`^\s*\*/`)
	valuePattern        = regexp.MustCompile(`^\s*(\w+)\s*=`)
)

// annotation describes one @tag recognised inside a doc comment.
type annotation struct {
	pattern *regexp.Regexp
	apply   func(b *recordBuilder, value string, line int)
}

// annotations are tried in order; the first match consumes the line.
var annotations = []annotation{
	{
		pattern: regexp.MustCompile(`^\s*\* @change_mode (\S+)`),
		apply: func(b *recordBuilder, v string, _ int) {
			b.rec.ChangeMode = strings.TrimPrefix(v, changeModePrefix)
		},
	},
	{
		pattern: regexp.MustCompile(`^\s*\* @access (\S+)`),
		apply: func(b *recordBuilder, v string, _ int) {
			b.rec.AccessModes = append(b.rec.AccessModes, strings.TrimPrefix(v, accessPrefix))
		},
	},
	{
		pattern: regexp.MustCompile(`^\s*\* @unit (\S+)`),
		apply: func(b *recordBuilder, v string, _ int) {
			b.rec.UnitType = v
		},
	},
	{
		pattern: regexp.MustCompile(`^\s*\* @data_enum (\S+)`),
		apply: func(b *recordBuilder, v string, _ int) {
			b.rec.EnumTypes = append(b.rec.EnumTypes, v)
		},
	},
	{
		pattern: regexp.MustCompile(`^\s*\* @version (\S+)`),
		apply: func(b *recordBuilder, v string, line int) {
			if b.rec.Version != "" {
				if b.duplicateVersionLine == 0 {
					b.duplicateVersionLine = line
				}
				return
			}
			b.rec.Version = v
		},
	},
}

type scanState int

const (
	stateOutside scanState = iota
	stateEnumBlock
	stateComment
)

// recordBuilder accumulates one property while its doc comment is scanned.
type recordBuilder struct {
	rec                  meta.PropertyRecord
	description          []string
	descriptionDone      bool
	comment              strings.Builder
	duplicateVersionLine int
}

// addText feeds one free-text comment line (already stripped) to the builder.
func (b *recordBuilder) addText(text string) {
	if !b.descriptionDone {
		if text == "" {
			if len(b.description) > 0 {
				b.finishDescription()
			}
			return
		}
		b.description = append(b.description, text)
		return
	}

	if text == "" {
		if b.comment.Len() > 0 {
			b.comment.WriteByte('\n')
		}
		return
	}
	if b.comment.Len() > 0 {
		b.comment.WriteByte(' ')
	}
	b.comment.WriteString(text)
}

func (b *recordBuilder) finishDescription() {
	b.rec.Description = strings.Join(b.description, " ")
	b.descriptionDone = true
}

// build validates the mandatory annotations and returns the finished record.
func (b *recordBuilder) build(name string, line int) (meta.PropertyRecord, error) {
	if b.duplicateVersionLine != 0 {
		return meta.PropertyRecord{}, &ParseError{Entry: name, Line: b.duplicateVersionLine, Err: ErrDuplicateVersion}
	}
	if b.rec.ChangeMode == "" {
		return meta.PropertyRecord{}, &ParseError{Entry: name, Line: line, Err: ErrMissingChangeMode}
	}
	if len(b.rec.AccessModes) == 0 {
		return meta.PropertyRecord{}, &ParseError{Entry: name, Line: line, Err: ErrMissingAccess}
	}
	if b.rec.Version == "" {
		return meta.PropertyRecord{}, &ParseError{Entry: name, Line: line, Err: ErrMissingVersion}
	}
	if !b.descriptionDone {
		b.finishDescription()
	}

	rec := b.rec
	rec.Name = name
	rec.Comment = b.comment.String()
	return rec, nil
}

// ScanAnnotationsFile reads and scans a VehicleProperty.aidl file.
func ScanAnnotationsFile(path string) (*meta.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	props, err := ScanAnnotations(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &meta.Metadata{Source: path, Properties: props}, nil
}

// ScanAnnotations scans the VehicleProperty enum block in r and returns one
// record per enum entry, in declaration order.
func ScanAnnotations(r io.Reader) ([]meta.PropertyRecord, error) {
	var (
		props   []meta.PropertyRecord
		state   = stateOutside
		builder *recordBuilder
		lineNo  int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if enumStartPattern.MatchString(line) {
			state = stateEnumBlock
			continue
		}
		if enumEndPattern.MatchString(line) {
			state = stateOutside
			builder = nil
			continue
		}

		switch state {
		case stateOutside:
			continue

		case stateEnumBlock:
			if loc := commentBeginPattern.FindStringIndex(line); loc != nil {
				builder = &recordBuilder{}
				state = stateComment
				if strings.Contains(line[loc[1]:], "*/") {
					state = stateEnumBlock
				}
				continue
			}
			m := valuePattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			name := m[1]
			b := builder
			builder = nil
			if name == SkipPropertyName {
				continue
			}
			if b == nil {
				b = &recordBuilder{}
			}
			rec, err := b.build(name, lineNo)
			if err != nil {
				return nil, err
			}
			props = append(props, rec)

		case stateComment:
			if commentEndPattern.MatchString(line) {
				if !builder.descriptionDone && len(builder.description) > 0 {
					builder.finishDescription()
				}
				state = stateEnumBlock
				continue
			}
			if applyAnnotation(builder, line, lineNo) {
				continue
			}
			builder.addText(stripCommentMarker(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", lineNo+1, err)
	}

	return props, nil
}

func applyAnnotation(b *recordBuilder, line string, lineNo int) bool {
	for _, a := range annotations {
		if m := a.pattern.FindStringSubmatch(line); m != nil {
			a.apply(b, m[1], lineNo)
			return true
		}
	}
	return false
}

func stripCommentMarker(line string) string {
	text := strings.TrimSpace(line)
	if strings.HasPrefix(text, "*") {
		text = strings.TrimSpace(text[1:])
	}
	return text
}
