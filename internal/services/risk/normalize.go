package risk

import (
	"encoding/json"
	"fmt"
	"strings"

	"fraudeye/internal/models"
)

// ResponseSchema is the structured answer requested from the model.
var ResponseSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"isFraud":    map[string]interface{}{"type": "BOOLEAN"},
		"confidence": map[string]interface{}{"type": "NUMBER"},
		"riskLevel": map[string]interface{}{
			"type": "STRING",
			"enum": []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"},
		},
		"explanation": map[string]interface{}{
			"type":  "ARRAY",
			"items": map[string]interface{}{"type": "STRING"},
		},
	},
}

// parsePayload decodes the model text into an untyped object. Empty text is
// treated as an empty object.
func parsePayload(text string) (map[string]interface{}, error) {
	text = stripCodeFence(strings.TrimSpace(text))
	if text == "" {
		return map[string]interface{}{}, nil
	}

	var raw interface{}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	payload, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrMalformedPayload, raw)
	}
	return payload, nil
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// normalizePrediction converts the untyped payload into a prediction. Fields
// that are absent or of the wrong type take their defaults.
func normalizePrediction(payload map[string]interface{}) models.RiskPrediction {
	p := models.RiskPrediction{
		RiskLevel:   models.RiskLow,
		Explanation: []string{ReasonIncomplete},
		Source:      models.SourceModel,
	}

	if v, ok := payload["isFraud"].(bool); ok {
		p.IsFraud = v
	}

	if v, ok := payload["confidence"].(float64); ok {
		p.Confidence = clamp01(v)
	}

	if v, ok := payload["riskLevel"].(string); ok {
		if level, known := models.ParseRiskLevel(strings.ToUpper(strings.TrimSpace(v))); known {
			p.RiskLevel = level
		}
	}

	if reasons := stringList(payload["explanation"]); len(reasons) > 0 {
		p.Explanation = reasons
	}

	return p
}

func stringList(v interface{}) []string {
	switch list := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if list != "" {
			return []string{list}
		}
	}
	return nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
