package handle

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"rogsuchak-api/api/internal/llm"
	"rogsuchak-api/api/internal/llm/types"
)

type TreatmentRequest struct {
	Disease string `json:"disease"`
}

type TreatmentResponse struct {
	Disease string              `json:"disease"`
	Data    types.TreatmentPlan `json:"data"`
}

func (h *Handle) Treatment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "POST only"})
		return
	}
	var req TreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json: " + err.Error()})
		return
	}

	disease := strings.TrimSpace(req.Disease)
	if disease == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Disease name is required."})
		return
	}

	plan, err := h.engine.Treatment(r.Context(), disease)
	if err != nil {
		var genErr *llm.GenerationError
		if errors.As(err, &genErr) {
			log.Printf("treatment generation failed for %q: %s", disease, genErr.Detail)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Failed to process treatment response.",
				"details": genErr.Detail,
			})
			return
		}
		log.Printf("treatment call failed for %q: %v", disease, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to generate treatment recommendation.",
			"details": err.Error(),
		})
		return
	}

	log.Printf("treatment generated for %q", disease)
	writeJSON(w, http.StatusOK, TreatmentResponse{Disease: disease, Data: plan})
}
