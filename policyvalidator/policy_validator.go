package policyvalidator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/fleetscaler/fleetscaler/models"
)

const policySchema = `{
	"$schema": "http://json-schema.org/draft-06/schema#",
	"type": "object",
	"required": ["metric_kind", "high_threshold", "step_size", "cooldown_seconds"],
	"properties": {
		"metric_kind": {
			"type": "string",
			"enum": ["cpu", "memory"]
		},
		"high_threshold": {
			"type": "number",
			"exclusiveMinimum": 0,
			"maximum": 100
		},
		"low_threshold": {
			"type": "number",
			"minimum": 0,
			"maximum": 100
		},
		"step_size": {
			"type": "integer",
			"minimum": 1
		},
		"cooldown_seconds": {
			"type": "integer",
			"minimum": 0
		},
		"breach_duration_seconds": {
			"type": "integer",
			"minimum": 60,
			"maximum": 3600
		},
		"capacity_binding": {
			"type": "object",
			"required": ["target_utilization_percent", "min_step", "max_step"],
			"properties": {
				"target_utilization_percent": {
					"type": "integer",
					"minimum": 1,
					"maximum": 100
				},
				"min_step": {
					"type": "integer",
					"minimum": 1
				},
				"max_step": {
					"type": "integer",
					"minimum": 1
				}
			}
		}
	}
}`

type PolicyValidationError struct {
	Context     string `json:"context"`
	Description string `json:"description"`
}

type ValidationErrors []PolicyValidationError

var _ error = ValidationErrors{}

func (v ValidationErrors) Error() string {
	errs := make([]string, 0, len(v))
	for _, failure := range v {
		errs = append(errs, fmt.Sprintf("%s-%s", failure.Context, failure.Description))
	}
	return strings.Join(errs, ", ")
}

type PolicyValidator struct {
	schemaLoader gojsonschema.JSONLoader
}

func NewPolicyValidator() *PolicyValidator {
	return &PolicyValidator{
		schemaLoader: gojsonschema.NewStringLoader(policySchema),
	}
}

// ValidatePolicy checks the raw policy JSON against the schema, then applies
// the semantic rules the schema cannot express (low threshold below high
// threshold, step ordering in the capacity binding).
func (pv *PolicyValidator) ValidatePolicy(rawJson []byte) (*models.ScalingPolicy, ValidationErrors) {
	result, err := gojsonschema.Validate(pv.schemaLoader, gojsonschema.NewBytesLoader(rawJson))
	if err != nil {
		return nil, ValidationErrors{{Context: "(root)", Description: err.Error()}}
	}
	if !result.Valid() {
		errs := ValidationErrors{}
		for _, resultError := range result.Errors() {
			errs = append(errs, PolicyValidationError{
				Context:     resultError.Context().String(),
				Description: resultError.Description(),
			})
		}
		return nil, errs
	}

	policy := &models.ScalingPolicy{}
	if err := json.Unmarshal(rawJson, policy); err != nil {
		return nil, ValidationErrors{{Context: "(root)", Description: err.Error()}}
	}
	if err := policy.Validate(); err != nil {
		return nil, ValidationErrors{{Context: "(root)", Description: err.Error()}}
	}
	return policy, nil
}
