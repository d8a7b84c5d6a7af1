package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Meu App", "meu-app"},
		{"diacritics", "Instalação Rápida", "instalacao-rapida"},
		{"punctuation", "TV Box / Receptores!", "tv-box-receptores"},
		{"separator runs", "a   --  b", "a-b"},
		{"leading and trailing", "  -App-  ", "app"},
		{"digits", "Player 2 HD", "player-2-hd"},
		{"empty", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.title); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		existing []string
		want     string
	}{
		{"free", "Meu App", nil, "meu-app"},
		{"first collision", "Como instalar", []string{"como-instalar"}, "como-instalar-1"},
		{"second collision", "Como instalar", []string{"como-instalar", "como-instalar-1"}, "como-instalar-2"},
		{"empty title", "", []string{"app"}, "app-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allocate(tt.title, tt.existing); got != tt.want {
				t.Errorf("Allocate(%q, %v) = %q, want %q", tt.title, tt.existing, got, tt.want)
			}
		})
	}
}

func TestAllocateNeverReturnsTaken(t *testing.T) {
	existing := []string{"app", "app-1", "app-2", "app-3"}
	got := Allocate("App", existing)
	for _, s := range existing {
		if got == s {
			t.Fatalf("Allocate returned taken slug %q", got)
		}
	}
}
