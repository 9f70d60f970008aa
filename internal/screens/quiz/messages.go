package quiz

// sessionStartedMsg is sent when the session start event has been persisted.
type sessionStartedMsg struct {
	Err error
}

// answerSavedMsg is sent when an answer event has been persisted.
type answerSavedMsg struct {
	Err error
}

// sessionEndedMsg is sent when the session end event has been persisted.
type sessionEndedMsg struct {
	Err error
}
