package services

import "strings"

// DefaultLanguage is used whenever a session carries no language preference.
const DefaultLanguage = "en"

// SessionStore abstracts the per-respondent in-flight state. Get must return
// a well-formed empty session for unknown tokens rather than fail.
type SessionStore interface {
	Get(token string) SurveySession
	Put(token string, sess SurveySession)
	Clear(token string)
}

// ResponseStore abstracts the durable append-only response repository.
type ResponseStore interface {
	AppendResponse(details RespondentIdentity, answers map[string]string) (*StoredResponse, error)
	ListResponses() ([]*StoredResponse, error)
}

// Catalog abstracts the read-only question catalog loaded at startup.
type Catalog interface {
	LocalizedQuestions(lang string) []QuestionView
	Text(id, lang string) (string, bool)
}

// IdentifyRequest carries the step-1 form fields. Everything is optional
// opaque text.
type IdentifyRequest struct {
	Name           string `json:"name"`
	RegisterNumber string `json:"register_number"`
	College        string `json:"college"`
	Location       string `json:"location"`
	Language       string `json:"language"`
}

// FlowService orchestrates the survey steps: identify, draft, review,
// commit, confirm. Step sequencing is advisory; any step called out of order
// operates on empty defaults instead of failing.
type FlowService struct {
	sessions  SessionStore
	responses ResponseStore
	catalog   Catalog
	signer    *ConfirmationSigner
}

func NewFlowService(sessions SessionStore, responses ResponseStore, cat Catalog, signer *ConfirmationSigner) *FlowService {
	return &FlowService{sessions: sessions, responses: responses, catalog: cat, signer: signer}
}

// Identify records the respondent's details and language preference in the
// session. It always succeeds.
func (s *FlowService) Identify(token string, req IdentifyRequest) SurveySession {
	sess := s.sessions.Get(token)
	sess.Identity = RespondentIdentity{
		Name:           req.Name,
		RegisterNumber: req.RegisterNumber,
		College:        req.College,
		Location:       req.Location,
	}
	sess.Language = normalizeLanguage(req.Language)
	s.sessions.Put(token, sess)
	return sess
}

// Questions returns the catalog in the session's language, for rendering the
// answer step.
func (s *FlowService) Questions(token string) ([]QuestionView, string) {
	lang := sessionLanguage(s.sessions.Get(token))
	return s.catalog.LocalizedQuestions(lang), lang
}

// Draft replaces the session's draft answers wholesale and returns the
// review rendering. There is no partial merge across submissions.
func (s *FlowService) Draft(token string, answers map[string]string) ReviewView {
	sess := s.sessions.Get(token)
	sess.Answers = copyAnswers(answers)
	s.sessions.Put(token, sess)
	return s.reviewOf(sess)
}

// Review re-renders the current draft joined against the catalog. Pure read,
// idempotent, tolerates an empty session.
func (s *FlowService) Review(token string) ReviewView {
	return s.reviewOf(s.sessions.Get(token))
}

// Commit converts the session into exactly one durable Response, clears the
// session in full, and hands the committed values forward by value together
// with a signed confirmation token. An absent or partially empty session is
// not an error; it commits empty defaults.
func (s *FlowService) Commit(token string) (*CommitResult, error) {
	sess := s.sessions.Get(token)
	details := sess.Identity
	answers := copyAnswers(sess.Answers)

	stored, err := s.responses.AppendResponse(details, answers)
	if err != nil {
		return nil, err
	}
	s.sessions.Clear(token)

	confirm, err := s.signer.Sign(details, answers)
	if err != nil {
		return nil, err
	}
	return &CommitResult{
		ResponseID:   stored.ID,
		SubmittedAt:  stored.SubmittedAt,
		Identity:     details,
		Answers:      answers,
		ConfirmToken: confirm,
	}, nil
}

// Confirmation decodes a confirmation token and joins the committed answers
// with the catalog. It never reads the (already cleared) session.
func (s *FlowService) Confirmation(confirmToken string) (*ConfirmationView, error) {
	claims, err := s.signer.Parse(confirmToken)
	if err != nil {
		return nil, err
	}
	answers := copyAnswers(claims.Answers)
	return &ConfirmationView{
		Identity: claims.Details,
		Entries:  s.joinCatalog(answers, DefaultLanguage),
		Answers:  answers,
	}, nil
}

// ListResponses returns every stored response, oldest first.
func (s *FlowService) ListResponses() ([]*StoredResponse, error) {
	out, err := s.responses.ListResponses()
	if err != nil {
		return nil, err
	}
	for _, r := range out {
		if r.Answers == nil {
			r.Answers = map[string]string{}
		}
	}
	return out, nil
}

func (s *FlowService) reviewOf(sess SurveySession) ReviewView {
	lang := sessionLanguage(sess)
	answers := copyAnswers(sess.Answers)
	return ReviewView{
		Identity: sess.Identity,
		Language: lang,
		Entries:  s.joinCatalog(answers, lang),
		Answers:  answers,
	}
}

func (s *FlowService) joinCatalog(answers map[string]string, lang string) []ReviewEntry {
	qs := s.catalog.LocalizedQuestions(lang)
	entries := make([]ReviewEntry, 0, len(qs))
	for _, q := range qs {
		entries = append(entries, ReviewEntry{QuestionID: q.ID, Question: q.Text, Answer: answers[q.ID]})
	}
	return entries
}

func sessionLanguage(sess SurveySession) string {
	if sess.Language == "" {
		return DefaultLanguage
	}
	return sess.Language
}

func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

func copyAnswers(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
