package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/huma-greeter/internal/http/v1/hello"
)

// Options carries what the v1 operations need from configuration.
type Options struct {
	// Greeting is the message served by GET /hello.
	Greeting string
}

// Register wires all v1 operations into the provided API router.
func Register(api huma.API, opts Options) {
	hello.Register(api, opts.Greeting)
}
