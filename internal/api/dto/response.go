package dto

// The API carries two envelope shapes, kept distinct for client
// compatibility: auth endpoints answer with a "status" envelope, the user and
// ticket resources answer with a "success" envelope.

// AuthEnvelope wraps auth endpoint responses.
type AuthEnvelope struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// ResourceEnvelope wraps user and ticket resource responses.
type ResourceEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// AuthSuccess builds a success auth envelope.
func AuthSuccess(message string, data any) AuthEnvelope {
	return AuthEnvelope{Status: "success", Message: message, Data: data}
}

// AuthFailure builds an error auth envelope carrying a diagnostic string.
func AuthFailure(message, diagnostic string) AuthEnvelope {
	return AuthEnvelope{Status: "error", Message: message, Error: diagnostic}
}

// AuthValidationFailure builds the 422 envelope with a field→messages map.
func AuthValidationFailure(fields map[string][]string) AuthEnvelope {
	return AuthEnvelope{Status: "error", Message: "Validation failed", Errors: fields}
}

// ResourceSuccess builds a success resource envelope.
func ResourceSuccess(message string, data any) ResourceEnvelope {
	return ResourceEnvelope{Success: true, Message: message, Data: data}
}

// ResourceFailure builds a failure resource envelope.
func ResourceFailure(message string) ResourceEnvelope {
	return ResourceEnvelope{Success: false, Message: message}
}
