package dto

// TranscriptionResponse is the success body of POST /api/transcribe.
type TranscriptionResponse struct {
	Text string `json:"text" example:"今日は会議の議事録です。"`
}
