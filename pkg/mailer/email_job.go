package mailer

// Template names known to the worker.
const (
	TemplateWelcome = "welcome"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// When Template is set the worker renders subject and body from Data;
// otherwise Subject/Text/HTML are sent as-is.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// NewWelcomeJob builds the job enqueued after a successful registration.
func NewWelcomeJob(to, firstName string) EmailJob {
	return EmailJob{
		To:       to,
		Template: TemplateWelcome,
		Data: map[string]any{
			"FirstName": firstName,
			"Email":     to,
		},
	}
}
