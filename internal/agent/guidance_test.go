package agent

import (
	"context"
	"testing"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(context.Background(), "", ""); err == nil {
		t.Fatal("New with empty API key = nil error; want error")
	}
}

func TestUserMessage(t *testing.T) {
	got := userMessage(118, 76, 68, "slight headache")
	want := "Systolic: 118, Diastolic: 76, Heart Rate: 68, Symptoms: slight headache"
	if got != want {
		t.Errorf("userMessage = %q; want %q", got, want)
	}
}

func TestUserMessageEmptySymptoms(t *testing.T) {
	got := userMessage(118, 76, 68, "")
	want := "Systolic: 118, Diastolic: 76, Heart Rate: 68, Symptoms: "
	if got != want {
		t.Errorf("userMessage = %q; want %q", got, want)
	}
}
