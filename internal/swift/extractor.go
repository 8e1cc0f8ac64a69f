package swift

import (
	"regexp"
	"strings"
)

var fieldPattern = regexp.MustCompile(`^:(\w+):(.*)$`)

// Field is one tagged field with the continuation lines that follow it
type Field struct {
	Tag       string
	Value     string
	Subfields []string
	Line      int
}

// ExtractFields groups the lines of a block into fields and passes them to emit in line order.
// A field is emitted when the next field marker is read, the last one after the last line.
func ExtractFields(block Block, emit func(Field) error) error {
	var current *Field

	for _, line := range block {
		m := fieldPattern.FindStringSubmatch(line.Text)
		if m == nil {
			// lines before the first marker belong to no field
			if current != nil {
				current.Subfields = append(current.Subfields, line.Text)
			}
			continue
		}

		if current != nil {
			if err := emit(*current); err != nil {
				return err
			}
		}

		current = &Field{
			Tag:   strings.ToUpper(m[1]),
			Value: m[2],
			Line:  line.No,
		}
	}

	if current != nil {
		return emit(*current)
	}
	return nil
}
