package vfs

import "testing"

func TestStripBOM(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
		hadBOM  bool
	}{
		{"utf8 bom", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, "hi", true},
		{"no bom", []byte("hi"), "hi", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, had := StripBOM(tt.content)
			if string(got) != tt.want || had != tt.hadBOM {
				t.Errorf("StripBOM() = %q, %v; want %q, %v", got, had, tt.want, tt.hadBOM)
			}
		})
	}
}

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{"empty", nil, false},
		{"text", []byte("hello\tworld\r\n"), false},
		{"null byte", []byte("ab\x00cd"), true},
		{"control heavy", []byte("\x01\x02\x03abc"), true},
		{"utf8", []byte("héllo wörld"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinary(tt.content); got != tt.want {
				t.Errorf("IsBinary(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
