package gemini

import (
	"context"
	"fmt"

	"rogsuchak-api/api/internal/llm"
	"rogsuchak-api/api/internal/llm/types"
	"rogsuchak-api/api/internal/util"

	"github.com/google/generative-ai-go/genai"
)

// Engine generates treatment plans through the Gemini API. It holds the
// long-lived client built at startup; the caller owns the client and closes
// it on shutdown.
type Engine struct {
	client *genai.Client
	model  string
}

func New(client *genai.Client, model string) *Engine {
	return &Engine{
		client: client,
		model:  model,
	}
}

func (e *Engine) Name() string { return "gemini" }

// responseSchema constrains the model output to the treatment plan shape.
// The same shape is re-validated after parsing in types.ParseTreatmentPlan.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"organic": {
			Type:        genai.TypeString,
			Description: "Organic treatment recommendation, 1-2 sentences.",
		},
		"biological": {
			Type:        genai.TypeString,
			Description: "Biological treatment recommendation, 1-2 sentences.",
		},
		"chemical": {
			Type:        genai.TypeString,
			Description: "Chemical treatment recommendation, 1-2 sentences.",
		},
		"prevention": {
			Type:        genai.TypeArray,
			Description: "Exactly 5 distinct prevention measures.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"organic", "biological", "chemical", "prevention"},
}

func (e *Engine) Treatment(ctx context.Context, disease string) (types.TreatmentPlan, error) {
	m := e.client.GenerativeModel(e.model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0.3),
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	}

	prompt := fmt.Sprintf(`Act as an expert plant pathologist. A plant has been diagnosed with %q.
Provide comprehensive treatment and prevention guidance:
- "organic": an organic treatment recommendation (1-2 sentences),
- "biological": a biological treatment recommendation (1-2 sentences),
- "chemical": a chemical treatment recommendation (1-2 sentences),
- "prevention": exactly 5 distinct prevention measures.
Respond with JSON only.`, disease)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return types.TreatmentPlan{}, err
	}

	txt := firstText(resp)
	if txt == "" {
		if blockedBySafety(resp) {
			return types.TreatmentPlan{}, &llm.GenerationError{Detail: "Response blocked by safety settings."}
		}
		return types.TreatmentPlan{}, &llm.GenerationError{Detail: "Empty response or no text part found."}
	}

	plan, err := types.ParseTreatmentPlan(util.StripCodeFences(txt))
	if err != nil {
		return types.TreatmentPlan{}, &llm.GenerationError{Detail: err.Error()}
	}
	return plan, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func blockedBySafety(resp *genai.GenerateContentResponse) bool {
	if resp == nil {
		return false
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason == genai.BlockReasonSafety {
		return true
	}
	for _, c := range resp.Candidates {
		if c.FinishReason == genai.FinishReasonSafety {
			return true
		}
	}
	return false
}

func ptrFloat32(v float32) *float32 { return &v }
