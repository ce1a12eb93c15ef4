package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/ik"
)

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the shared {"error": "..."} envelope.
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorEnvelope{Error: err.Error()})
}

// statusForError classifies a core-package error: every validation/
// capability sentinel is a 400; ik.ErrIrrecoverableSingular (an all-zero
// Jacobian at the starting configuration) is the sole 500. Convergence
// failure and cooperative-deadline timeout are NOT errors — the solvers
// return them as ordinary (nil-error) results with Converged=false.
func statusForError(err error) int {
	if errors.Is(err, ik.ErrIrrecoverableSingular) {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
