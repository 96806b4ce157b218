package utils

import "testing"

func TestDetermineLocale_QueryParamWins(t *testing.T) {
	got := DetermineLocale("ta-IN", "en-US,en;q=0.9,ta;q=0.8", []string{"en", "ta"}, "en")
	if got != "ta" {
		t.Fatalf("want ta, got %s", got)
	}
}

func TestDetermineLocale_AcceptLanguageOrder(t *testing.T) {
	got := DetermineLocale("", "en-US,en;q=0.9,ta;q=0.8", []string{"en", "ta"}, "en")
	if got != "en" {
		t.Fatalf("want en, got %s", got)
	}
}

func TestDetermineLocale_AcceptLanguagePrefersHigherQ(t *testing.T) {
	got := DetermineLocale("", "ta;q=0.9,en;q=0.8", []string{"en", "ta"}, "en")
	if got != "ta" {
		t.Fatalf("want ta, got %s", got)
	}
}

func TestDetermineLocale_DefaultFallback(t *testing.T) {
	got := DetermineLocale("", "fr-FR,es;q=0.9", []string{"en", "ta"}, "en")
	if got != "en" {
		t.Fatalf("want en fallback, got %s", got)
	}
}

func TestDetermineLocale_EmptySupportedFallsBackToEnglish(t *testing.T) {
	got := DetermineLocale("", "", nil, "")
	if got != "en" {
		t.Fatalf("want en, got %s", got)
	}
}
