package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/huma-greeter/internal/platform/logging"
)

type handler struct {
	message string
}

// Register wires GET /hello into the API. Every call answers message,
// which is fixed for the lifetime of the process.
func Register(api huma.API, message string) {
	h := &handler{message: message}

	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        "/hello",
		Summary:     "Get the greeting",
		Description: "Returns the configured greeting. The response never changes between calls.",
		Tags:        []string{"Greeting"},
	}, h.get)
}

func (h *handler) get(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "hello get", zap.String("path", "/hello"))
	return &GetOutput{Body: Data{Message: h.message}}, nil
}
