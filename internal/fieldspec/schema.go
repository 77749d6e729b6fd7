package fieldspec

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
)

// BuildResultSchema returns a JSON-Schema (draft 2020-12 subset) as a generic
// map describing one extracted record for the given field configuration. It
// is handed to the extraction collaborator as an output constraint and used
// locally to validate what comes back.
func BuildResultSchema(fields []entity.FieldSpec) map[string]any {
	props := make(map[string]any, len(fields))
	required := make([]string, 0, len(fields))
	for _, f := range fields {
		props[f.Name] = propFor(f.Type)
		required = append(required, f.Name)
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func propFor(fieldType string) map[string]any {
	switch strings.ToUpper(fieldType) {
	case "NUMBER":
		return map[string]any{"type": "number"}
	case "BOOLEAN":
		return map[string]any{"type": "boolean"}
	case "DATE":
		return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
	case "CURRENCY":
		return map[string]any{"type": "string", "pattern": `^-?\d+(\.\d{1,2})?$`}
	default:
		return map[string]any{"type": "string"}
	}
}

// Validate checks a field configuration before it is accepted onto a run.
func Validate(fields []entity.FieldSpec) error {
	if len(fields) == 0 {
		return common.ValidationErrorf("at least one field is required")
	}
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return common.ValidationErrorf("field %d: name is required", i)
		}
		if _, dup := seen[name]; dup {
			return common.ValidationErrorf("field %q: duplicate name", name)
		}
		seen[name] = struct{}{}
		if !validFieldType(f.Type) {
			return common.ValidationErrorf("field %q: unknown type %q", name, f.Type)
		}
	}
	return nil
}

func validFieldType(t string) bool {
	for _, v := range constants.FieldTypes {
		if strings.EqualFold(t, v) {
			return true
		}
	}
	return false
}

// Checksum fingerprints a field configuration. Append runs compare it to
// detect config drift between clone and resubmission.
func Checksum(fields []entity.FieldSpec) string {
	h := sha256.New()
	for _, f := range fields {
		fmt.Fprintf(h, "%s\x00%s\x00%s\x00", f.Name, strings.ToUpper(f.Type), f.Prompt)
	}
	return hex.EncodeToString(h.Sum(nil))
}
