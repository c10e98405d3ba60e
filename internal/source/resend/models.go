package resend

// listEnvelope is the provider's collection response shape.
type listEnvelope[T any] struct {
	Data    []T  `json:"data"`
	HasMore bool `json:"has_more"`
}

type apiAudience struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type apiBroadcast struct {
	ID          string  `json:"id"`
	AudienceID  string  `json:"audience_id"`
	Name        string  `json:"name"`
	Subject     string  `json:"subject"`
	From        string  `json:"from"`
	ReplyTo     string  `json:"reply_to"`
	PreviewText string  `json:"preview_text"`
	Status      string  `json:"status"`
	HTML        string  `json:"html"`
	Text        string  `json:"text"`
	CreatedAt   string  `json:"created_at"`
	SentAt      *string `json:"sent_at"`
	ScheduledAt *string `json:"scheduled_at"`
}

type apiEmail struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	Subject   string `json:"subject"`
	HTML      string `json:"html"`
	CreatedAt string `json:"created_at"`
}
