package errors

import (
	"testing"
)

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"one", 1, false},
		{"three", 3, false},
		{"zero", 0, true},
		{"negative", -2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLength(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLength(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateLength(%d) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateInterval(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"default", 300, false},
		{"fast", 1, false},
		{"zero", 0, true},
		{"negative", -50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInterval(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInterval(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLabels(t *testing.T) {
	tests := []struct {
		name    string
		labels  []string
		frames  int
		wantErr bool
	}{
		{"matching", []string{"a", "b"}, 2, false},
		{"single", []string{"only"}, 1, false},
		{"no frames", nil, 0, true},
		{"too few labels", []string{"a"}, 2, true},
		{"too many labels", []string{"a", "b", "c"}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabels(tt.labels, tt.frames)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabels(%v, %d) error = %v, wantErr %v", tt.labels, tt.frames, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFlow(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"row", "row", false},
		{"column", "column", false},
		{"empty", "", true},
		{"abbreviated", "col", true},
		{"css injection", "row; color: red", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFlow(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFlow(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "plot.png", false},
		{"valid nested", "figures/run-1/loss.png", false},

		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "../secret.png", true},
		{"nested traversal", "a/../../b.png", true},
		{"backslash", "a\\b.png", true},
		{"null byte", "a\x00.png", true},
		{"control char", "a\x01.png", true},
		{"too long", string(make([]byte, 600)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
