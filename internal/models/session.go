package models

// Session is a student login persisted in the session store.
type Session struct {
	ID            string `json:"sessionId"`
	StudentID     int64  `json:"studentId"`
	Timestamp     int64  `json:"timestamp"`
	SessionString string `json:"sessionString"`
	Active        bool   `json:"active"`
}

// SessionLoginRequest carries the credential to compare.
type SessionLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// SessionStringRequest identifies an existing session.
type SessionStringRequest struct {
	SessionString string `json:"sessionString" validate:"required"`
}

// SessionLoginResponse is returned on successful login.
type SessionLoginResponse struct {
	SessionString string `json:"sessionString"`
	SessionID     string `json:"sessionId"`
	StudentID     int64  `json:"studentId"`
	Timestamp     int64  `json:"timestamp"`
}

// SessionStatus describes a verified session without its bearer string.
type SessionStatus struct {
	SessionID string `json:"sessionId"`
	StudentID int64  `json:"studentId"`
	Timestamp int64  `json:"timestamp"`
	Active    bool   `json:"active"`
}
