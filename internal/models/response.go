package models

// APIResponse est l'enveloppe commune de toutes les réponses JSON
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`

	// RetryAfter n'est renseigné que pour les 429
	RetryAfter int    `json:"retry_after,omitempty"`
	Timestamp  string `json:"timestamp"`
}
