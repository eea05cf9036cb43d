package impact

import (
	"errors"
	"reflect"
	"testing"
)

var knownStates = []string{
	"California",
	"Nebraska",
	"Nevada",
	"New Hampshire",
	"New Jersey",
	"New Mexico",
	"New York",
	"Pennsylvania",
}

func TestResolveStateExact(t *testing.T) {
	got, err := ResolveState("Nevada", knownStates)
	if err != nil {
		t.Fatalf("ResolveState failed: %v", err)
	}
	if got != "Nevada" {
		t.Fatalf("got %q, want Nevada", got)
	}
}

func TestResolveStateCaseInsensitive(t *testing.T) {
	got, err := ResolveState("  nEvAdA ", knownStates)
	if err != nil {
		t.Fatalf("ResolveState failed: %v", err)
	}
	if got != "Nevada" {
		t.Fatalf("got %q, want Nevada", got)
	}
}

func TestResolveStateTypoSuggestion(t *testing.T) {
	_, err := ResolveState("Nevda", knownStates)

	var notFound *StateNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err=%T, want *StateNotFoundError", err)
	}
	if !reflect.DeepEqual(notFound.Suggestions, []string{"Nevada"}) {
		t.Fatalf("suggestions=%v, want [Nevada]", notFound.Suggestions)
	}
}

func TestResolveStateAmbiguous(t *testing.T) {
	_, err := ResolveState("New", knownStates)

	var ambiguous *AmbiguousInputError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("err=%T, want *AmbiguousInputError", err)
	}
	want := []string{"New Hampshire", "New Jersey", "New Mexico", "New York"}
	if !reflect.DeepEqual(ambiguous.Matches, want) {
		t.Fatalf("matches=%v, want %v", ambiguous.Matches, want)
	}
}

func TestResolveStateNoMatchSample(t *testing.T) {
	_, err := ResolveState("Atlantis", knownStates)

	var notFound *StateNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err=%T, want *StateNotFoundError", err)
	}
	if len(notFound.Suggestions) == 0 {
		t.Fatalf("expected a sample of valid state names")
	}
	if len(notFound.Suggestions) > maxSuggestionSample {
		t.Fatalf("sample too large: %v", notFound.Suggestions)
	}
}

func TestResolveStateEmptyInput(t *testing.T) {
	_, err := ResolveState("   ", knownStates)

	var notFound *StateNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err=%T, want *StateNotFoundError", err)
	}
}
