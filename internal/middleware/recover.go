package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"

	"allergy-assistant/internal/models"
)

// UnexpectedErrorMessage is the only detail callers see for unhandled failures.
const UnexpectedErrorMessage = "An unexpected error occurred"

// Recover turns a panic in any downstream handler into a logged stack trace
// and a generic 500 JSON body.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log.Printf("Error in %s %s [%s]: %v\n%s",
				r.Method, r.URL.Path, r.Header.Get(RequestIDHeader), rec, debug.Stack())
			WriteUnexpected(w)
		}()

		next.ServeHTTP(w, r)
	})
}

// WriteUnexpected writes the generic 500 body used for unhandled failures.
func WriteUnexpected(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: UnexpectedErrorMessage})
}
