package ingest

import (
	"reflect"
	"testing"
)

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"semicolons", "John Smith; Jane Doe", []string{"John Smith", "Jane Doe"}},
		{"ampersand", "John Smith & Jane Doe", []string{"John Smith", "Jane Doe"}},
		{"word and", "John Smith and Jane Doe", []string{"John Smith", "Jane Doe"}},
		{"commas", "Smith, John", []string{"Smith", "John"}},
		{"honorific stripped", "Dr. John Smith; Prof. Jane Doe", []string{"John Smith", "Jane Doe"}},
		{"suffix stripped", "John Smith Jr.; Robert Brown III", []string{"John Smith", "Robert Brown"}},
		{"empty", "   ", nil},
		{"trailing separator", "John Smith;", []string{"John Smith"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitAuthors(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitAuthors(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleanAuthorName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Dr. Mary Jones  ", "Mary Jones"},
		{"Mrs Helen Cho PhD", "Helen Cho"},
		{"Sandra Day IV", "Sandra Day"},
		{"Plain Name", "Plain Name"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanAuthorName(tt.in); got != tt.want {
			t.Errorf("cleanAuthorName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
