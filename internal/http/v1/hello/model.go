package hello

// Data is the greeting payload. Message is never empty.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello from backend" minLength:"1"`
}

// GetOutput is the response wrapper for GET /hello.
type GetOutput struct {
	Body Data
}
