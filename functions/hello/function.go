// Package hello deploys the greeting endpoint as an HTTP Cloud Function. It
// answers with the same contract as GET /hello on the main service.
package hello

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

// DefaultGreeting matches the main service default.
const DefaultGreeting = "Hello from backend"

func init() {
	functions.HTTP("Hello", newHandler(greetingFromEnv()))
}

// Response is the greeting payload.
type Response struct {
	Message string `json:"message"`
}

func greetingFromEnv() string {
	if msg := os.Getenv("GREETING_MESSAGE"); msg != "" {
		return msg
	}
	return DefaultGreeting
}

func newHandler(message string) http.HandlerFunc {
	body, err := json.Marshal(Response{Message: message})
	if err != nil {
		panic(err)
	}
	body = append(body, '\n')

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusMethodNotAllowed)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"title":  http.StatusText(http.StatusMethodNotAllowed),
				"status": http.StatusMethodNotAllowed,
				"detail": "method " + r.Method + " not allowed",
			})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}
}
