package session

import (
	"testing"
	"time"

	"github.com/surveyflow/surveyflow/internal/services"
)

func TestGetUnknownTokenReturnsEmptyDefaults(t *testing.T) {
	s := NewStore(0)
	sess := s.Get("missing")
	if sess.Identity != (services.RespondentIdentity{}) {
		t.Fatalf("identity = %+v, want zero", sess.Identity)
	}
	if sess.Answers == nil || len(sess.Answers) != 0 {
		t.Fatalf("answers = %v, want empty non-nil map", sess.Answers)
	}
}

func TestPutGetClear(t *testing.T) {
	s := NewStore(0)
	s.Put("tok", services.SurveySession{
		Identity: services.RespondentIdentity{Name: "Asha"},
		Language: "ta",
		Answers:  map[string]string{"q1": "Paris"},
	})

	got := s.Get("tok")
	if got.Identity.Name != "Asha" || got.Language != "ta" || got.Answers["q1"] != "Paris" {
		t.Fatalf("unexpected session: %+v", got)
	}

	s.Clear("tok")
	if got := s.Get("tok"); len(got.Answers) != 0 || got.Identity.Name != "" {
		t.Fatalf("session survived clear: %+v", got)
	}
}

func TestGetReturnsIsolatedCopy(t *testing.T) {
	s := NewStore(0)
	s.Put("tok", services.SurveySession{Answers: map[string]string{"q1": "A"}})

	got := s.Get("tok")
	got.Answers["q1"] = "mutated"

	if again := s.Get("tok"); again.Answers["q1"] != "A" {
		t.Fatalf("stored session mutated through returned copy: %v", again.Answers)
	}
}

func TestInactivityExpiry(t *testing.T) {
	s := NewStore(10 * time.Minute)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	s.Put("tok", services.SurveySession{Answers: map[string]string{"q1": "A"}})

	s.now = func() time.Time { return base.Add(5 * time.Minute) }
	if got := s.Get("tok"); got.Answers["q1"] != "A" {
		t.Fatalf("session expired too early: %v", got.Answers)
	}

	// Get refreshed the window at +5m; expire it from there.
	s.now = func() time.Time { return base.Add(16 * time.Minute) }
	if got := s.Get("tok"); len(got.Answers) != 0 {
		t.Fatalf("session not swept after ttl: %v", got.Answers)
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0 after sweep", s.Len())
	}
}

func TestZeroTTLDisablesExpiry(t *testing.T) {
	s := NewStore(0)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	s.Put("tok", services.SurveySession{Answers: map[string]string{"q1": "A"}})

	s.now = func() time.Time { return base.Add(24 * time.Hour) }
	if got := s.Get("tok"); got.Answers["q1"] != "A" {
		t.Fatalf("session expired with ttl disabled: %v", got.Answers)
	}
}

func TestNewTokenIsOpaqueAndUnique(t *testing.T) {
	a, b := NewToken(), NewToken()
	if a == "" || a == b {
		t.Fatalf("tokens not unique: %q %q", a, b)
	}
}
