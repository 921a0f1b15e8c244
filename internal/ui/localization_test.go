package ui

import "testing"

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyOpenSelected); got != "Open Selected Video" {
		t.Errorf("Expected English text, got %q", got)
	}

	l.SetLanguage("ru")
	if got := l.GetCurrentLanguage(); got != "ru" {
		t.Errorf("Expected language ru, got %s", got)
	}
	if got := l.GetText(KeyColumnTitle); got != "Название" {
		t.Errorf("Expected Russian text, got %q", got)
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if got := l.GetCurrentLanguage(); got != "ru" {
		t.Errorf("Unknown language should keep ru, got %s", got)
	}

	// System maps to English
	l.SetLanguage("system")
	if got := l.GetCurrentLanguage(); got != "en" {
		t.Errorf("System language should map to en, got %s", got)
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Missing key should return itself, got %q", got)
	}
}

func TestLocalizationCompleteness(t *testing.T) {
	l := NewLocalization()
	for key := range l.texts["en"] {
		for lang, texts := range l.texts {
			if _, ok := texts[key]; !ok {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalizationTextf(t *testing.T) {
	l := NewLocalization()
	if got := l.Textf(KeyStatusShowingSome, 2, 3); got != "Showing 2 of 3 videos" {
		t.Errorf("Unexpected formatted text %q", got)
	}
	l.SetLanguage("pt")
	if got := l.Textf(KeyStatusShowingAll, 5); got != "Mostrando todos os 5 vídeos" {
		t.Errorf("Unexpected formatted text %q", got)
	}
}
