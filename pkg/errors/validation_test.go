package errors

import (
	"strings"
	"testing"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Portada", false},
		{"accents", "Desafío 3", false},
		{"emoji", "Profe Lupa 🐹🔍", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 300), true},
		{"newline", "foo\nbar", true},
		{"null byte", "foo\x00bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText("title", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidContent) {
				t.Errorf("ValidateText(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidContent)
			}
		})
	}
}

func TestValidateAssetPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "assets/isabella.png", false},
		{"nested", "assets/chapters/1/cover.png", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "assets/../../secret.png", true},
		{"backslash", "assets\\img.png", true},
		{"control char", "assets/\x01.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssetPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAssetPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"#3E2723", false},
		{"#fff", false},
		{"#00000080", false},

		{"", true},
		{"3E2723", true},
		{"#12345", true},
		{"#GGGGGG", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
