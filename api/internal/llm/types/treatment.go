package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// TreatmentPlan is the structured recommendation for a single disease. All
// four fields are mandatory; Prevention always holds exactly five measures.
type TreatmentPlan struct {
	Organic    string   `json:"organic"`
	Biological string   `json:"biological"`
	Chemical   string   `json:"chemical"`
	Prevention []string `json:"prevention"`
}

// treatmentSchema mirrors the response schema sent to the model. The model's
// schema adherence is best effort, so the payload is re-checked here before
// anything reaches a caller.
const treatmentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["organic", "biological", "chemical", "prevention"],
  "properties": {
    "organic":    {"type": "string", "minLength": 1},
    "biological": {"type": "string", "minLength": 1},
    "chemical":   {"type": "string", "minLength": 1},
    "prevention": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "minItems": 5,
      "maxItems": 5
    }
  }
}`

var treatmentSchemaLoader = gojsonschema.NewStringLoader(treatmentSchema)

// ParseTreatmentPlan validates raw against the treatment schema and
// unmarshals it. A payload that is not JSON, is missing a field, or carries
// other than five prevention items is rejected whole; no partial plan is
// ever returned.
func ParseTreatmentPlan(raw string) (TreatmentPlan, error) {
	res, err := gojsonschema.Validate(treatmentSchemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return TreatmentPlan{}, fmt.Errorf("treatment payload is not valid JSON: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return TreatmentPlan{}, fmt.Errorf("treatment payload does not match schema: %s", strings.Join(msgs, "; "))
	}

	var p TreatmentPlan
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return TreatmentPlan{}, fmt.Errorf("treatment payload: %w", err)
	}
	return p, nil
}
