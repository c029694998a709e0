package models

// Notification is the broadcast built from a student record.
type Notification struct {
	Subject    string
	Message    string
	Attributes NotificationAttributes
}

// NotificationAttributes are forwarded as message metadata.
type NotificationAttributes struct {
	AlumnoID  string
	Matricula string
}

// NotificationResult confirms a dispatched broadcast.
type NotificationResult struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}
