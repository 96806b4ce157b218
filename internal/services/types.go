package services

import "time"

// RespondentIdentity is the free-form personal detail block collected at the
// first step. All fields are optional opaque text; nothing is validated.
type RespondentIdentity struct {
	Name           string `json:"name"`
	RegisterNumber string `json:"register_number"`
	College        string `json:"college"`
	Location       string `json:"location"`
}

// SurveySession is the in-flight state for one respondent, keyed by an
// opaque token the transport layer supplies. A missing session reads as the
// zero value; readers never special-case absence.
type SurveySession struct {
	Identity RespondentIdentity `json:"identity"`
	Language string             `json:"language"`
	Answers  map[string]string  `json:"answers"`
}

// StoredResponse is a finalized, durable survey response.
type StoredResponse struct {
	ID          int64              `json:"id"`
	Details     RespondentIdentity `json:"details"`
	Answers     map[string]string  `json:"answers"`
	SubmittedAt time.Time          `json:"submitted_at"`
}

// QuestionView is a catalog question resolved to one display language.
type QuestionView struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ReviewEntry pairs a catalog question with the answer drafted for it.
type ReviewEntry struct {
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

// ReviewView is the read-only rendering of the current draft joined against
// the catalog.
type ReviewView struct {
	Identity RespondentIdentity `json:"identity"`
	Language string             `json:"language"`
	Entries  []ReviewEntry      `json:"entries"`
	Answers  map[string]string  `json:"answers"`
}

// CommitResult carries the committed values forward by value. The session is
// already cleared when this is returned, so the confirmation step must not
// re-read it.
type CommitResult struct {
	ResponseID   int64              `json:"response_id"`
	SubmittedAt  time.Time          `json:"submitted_at"`
	Identity     RespondentIdentity `json:"identity"`
	Answers      map[string]string  `json:"answers"`
	ConfirmToken string             `json:"confirm_token"`
}

// ConfirmationView is the human-readable reconstruction of a just-committed
// response.
type ConfirmationView struct {
	Identity RespondentIdentity `json:"identity"`
	Entries  []ReviewEntry      `json:"entries"`
	Answers  map[string]string  `json:"answers"`
}
