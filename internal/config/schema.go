package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gopak/minigrep/internal/assets"
	"github.com/xeipuuv/gojsonschema"
)

var schemaJSON = assets.SettingsSchema

// SchemaError lists every settings problem, each tagged with the file (or
// the command line) that set the offending key.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return "schema validation failed: " + strings.Join(e.Problems, "; ")
}

func ValidateAgainstSchema(s Settings) error {
	if len(schemaJSON) == 0 {
		return errors.New("schema not embedded")
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewBytesLoader(b))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	se := &SchemaError{}
	for _, e := range res.Errors() {
		field := e.Field()
		p := fmt.Sprintf("%s: %s", field, e.Description())
		if origin := s.Origin(field); origin != "" {
			p += " (set in " + origin + ")"
		}
		se.Problems = append(se.Problems, p)
	}
	return se
}
