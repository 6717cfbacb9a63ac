package i18n

import "testing"

func TestMessagesForLocale(t *testing.T) {
	if MessagesForLocale(LocaleRomanian).HeroTitle == "" {
		t.Fatalf("expected messages for Romanian")
	}
	if MessagesForLocale(LocaleEnglish).HeroTitle == "" {
		t.Fatalf("expected messages for English")
	}
	unknown := MessagesForLocale(Locale("xx"))
	if unknown.HeroTitle != romanianMessages.HeroTitle {
		t.Fatalf("expected fallback to Romanian")
	}
}

func TestFromPathSegment(t *testing.T) {
	tests := []struct {
		input    string
		expected Locale
		ok       bool
	}{
		{"ro", LocaleRomanian, true},
		{"en", LocaleEnglish, true},
		{"EN", LocaleEnglish, true},
		{" ro ", LocaleRomanian, true},
		{"fr", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := FromPathSegment(tt.input)
			if ok != tt.ok || got != tt.expected {
				t.Fatalf("expected (%v,%v), got (%v,%v)", tt.expected, tt.ok, got, ok)
			}
		})
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	tests := []struct {
		header   string
		expected Locale
	}{
		{"ro-RO,ro;q=0.9,en;q=0.8", LocaleRomanian},
		{"en-US,en;q=0.9", LocaleEnglish},
		{"en-GB", LocaleEnglish},
		{"", LocaleRomanian},
		{"de-DE,fr;q=0.5", LocaleRomanian},
		{"fr,en;q=0.5", LocaleEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got := FromAcceptLanguage(tt.header)
			if got != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
