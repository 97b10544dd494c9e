package errors

import (
	"testing"
)

func TestValidateVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid major.minor", "2.9", false},
		{"valid three part", "2.10.1", false},
		{"valid devel", "devel", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 100)), true},
		{"path traversal", "../secret", true},
		{"slash", "2.9/x", true},
		{"backslash", "2.9\\x", true},
		{"space", "2 9", true},
		{"newline", "2.9\n", true},
		{"null byte", "2\x009", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidVersion) {
				t.Errorf("ValidateVersion(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidVersion)
			}
		})
	}
}

func TestValidateCollectionName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "general", false},
		{"valid underscore", "community_general", false},
		{"valid digits", "vmware2", false},

		{"empty", "", true},
		{"dash", "my-coll", true},
		{"dot", "a.b", true},
		{"slash", "a/b", true},
		{"non ascii", "colleção", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCollectionName("name", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCollectionName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
