package handle

import (
	"encoding/json"
	"net/http"

	"rogsuchak-api/api/internal/llm"
)

type Handle struct {
	engine llm.Engine
}

func New(engine llm.Engine) *Handle {
	return &Handle{
		engine: engine,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
