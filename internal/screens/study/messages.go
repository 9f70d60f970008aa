package study

import "github.com/moh-dev-stack/quran-memorise-sub000/internal/srs"

// statesLoadedMsg is sent when the stored review states have been loaded.
type statesLoadedMsg struct {
	States map[string]srs.ReviewState
	Err    error
}

// eventSavedMsg is sent when a session or answer event has been persisted.
type eventSavedMsg struct {
	Err error
}

// ratingsSavedMsg is sent when the end-of-session ratings have been written
// through the scheduler.
type ratingsSavedMsg struct {
	Err error
}
