package assistant

import "testing"

func TestBuildPrompt_Default(t *testing.T) {
	got := BuildPrompt("ou rak labas", `{"labas":"fine"}`, "")

	expected := `Translate from Darija to English using the sentence and the following assistance: #SENTENCE: ou rak labas. #ASSISTANCE: {"labas":"fine"}`
	if got != expected {
		t.Errorf("BuildPrompt() = %q, want %q", got, expected)
	}
}

func TestBuildPrompt_Custom(t *testing.T) {
	custom := "Just translate: salam"

	got := BuildPrompt("salam", `{"salam":"hello"}`, custom)
	if got != custom {
		t.Errorf("BuildPrompt() = %q, want custom prompt verbatim", got)
	}
}
