package commands

import (
	"errors"
	"testing"
)

func TestParseTaskRef_Numeric(t *testing.T) {
	ref, err := ParseTaskRef([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.ByID {
		t.Error("expected ByID to be false")
	}
	if ref.Num != 5 {
		t.Errorf("expected Num 5, got %d", ref.Num)
	}
}

func TestParseTaskRef_MultiDigit(t *testing.T) {
	ref, err := ParseTaskRef([]string{"123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Num != 123 {
		t.Errorf("expected Num 123, got %d", ref.Num)
	}
}

func TestParseTaskRef_ID(t *testing.T) {
	ref, err := ParseTaskRef([]string{"id:1772366400000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.ByID {
		t.Error("expected ByID to be true")
	}
	if ref.ID != "1772366400000" {
		t.Errorf("expected ID 1772366400000, got %q", ref.ID)
	}
	if ref.Num != 0 {
		t.Errorf("expected Num 0, got %d", ref.Num)
	}
}

func TestParseTaskRef_UUID(t *testing.T) {
	ref, err := ParseTaskRef([]string{"id:6ba7b810-9dad-11d1-80b4-00c04fd430c8"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.ID != "6ba7b810-9dad-11d1-80b4-00c04fd430c8" {
		t.Errorf("unexpected ID %q", ref.ID)
	}
}

func TestParseTaskRef_NoArgs(t *testing.T) {
	_, err := ParseTaskRef(nil)
	if !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRef_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"letters", []string{"abc"}, "invalid task reference: abc"},
		{"letter then digits", []string{"a1"}, "invalid task reference: a1"},
		{"negative", []string{"-1"}, "invalid task reference: -1"},
		{"empty", []string{""}, "invalid task reference: "},
		{"empty id", []string{"id:"}, "invalid task reference: id:"},
		{"blank id", []string{"id:  "}, "invalid task reference: id:  "},
		{"non-ascii digits", []string{"١٢"}, "invalid task reference: ١٢"},
		{"extra arg", []string{"1", "2"}, "unexpected argument: 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTaskRef(tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestIsAllDigits(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"0", true},
		{"12345", true},
		{"12a", false},
		{" 1", false},
		{"١", false},
	}

	for _, tt := range tests {
		if got := isAllDigits(tt.input); got != tt.want {
			t.Errorf("isAllDigits(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
