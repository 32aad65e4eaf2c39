package dto

// VoiceQueryRequest: a blank user means the configured default student.
type VoiceQueryRequest struct {
	Text string `json:"text" validate:"required,max=500"`
	User string `json:"user"`
}

type VoiceQueryResponse struct {
	Reply string `json:"reply"`
}
