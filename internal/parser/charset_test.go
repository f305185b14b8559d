package parser

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestNewUTF8Reader_AlreadyUTF8(t *testing.T) {
	t.Parallel()
	input := []byte(`[{"show":{"id":1,"name":"Amélie ☺"}}]`)
	reader, err := NewUTF8Reader(bytes.NewReader(input), "application/json; charset=utf-8")
	if err != nil {
		t.Fatalf("NewUTF8Reader failed: %v", err)
	}

	output, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Failed to read from UTF-8 reader: %v", err)
	}
	if !bytes.Equal(output, input) {
		t.Errorf("Expected UTF-8 content to pass through unchanged, got %q", output)
	}
}

func TestNewUTF8Reader_Latin1Label(t *testing.T) {
	t.Parallel()
	// é = 0xE9 in ISO-8859-1
	input := []byte(`[{"show":{"id":1,"name":"Caf` + string([]byte{0xE9}) + `"}}]`)
	reader, err := NewUTF8Reader(bytes.NewReader(input), "application/json; charset=ISO-8859-1")
	if err != nil {
		t.Fatalf("NewUTF8Reader failed: %v", err)
	}

	shows, err := NewShowParser(placeholder).Parse(reader)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if shows[0].Name != "Café" {
		t.Errorf("Expected 'Café', got %q", shows[0].Name)
	}
}

func TestNewUTF8Reader_NoContentType(t *testing.T) {
	t.Parallel()
	reader, err := NewUTF8Reader(strings.NewReader(`[]`), "")
	if err != nil {
		t.Fatalf("NewUTF8Reader failed: %v", err)
	}
	output, _ := io.ReadAll(reader)
	if string(output) != "[]" {
		t.Errorf("Expected body to pass through, got %q", output)
	}
}

func TestNewUTF8Reader_UnlabelledUTF8PastSniffWindow(t *testing.T) {
	t.Parallel()

	// Non-ASCII text only after the first 1024 bytes, which used to be sniffed as windows-1252
	body := `[{"score":1,"show":{"id":1,"name":"Filler","summary":"` + strings.Repeat("a", 1100) + `","image":null}},` +
		`{"score":0.5,"show":{"id":25,"name":"Pokémon","summary":"<p>Gotta catch ’em all</p>","image":null}}]`

	tests := []struct {
		name        string
		contentType string
	}{
		{name: "json without charset", contentType: "application/json"},
		{name: "no content type", contentType: ""},
		{name: "explicit utf-8", contentType: "application/json; charset=UTF-8"},
		{name: "unknown label", contentType: "application/json; charset=x-unknown"},
		{name: "malformed header", contentType: "application/json; charset"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reader, err := NewUTF8Reader(strings.NewReader(body), tt.contentType)
			if err != nil {
				t.Fatalf("NewUTF8Reader failed: %v", err)
			}
			shows, err := NewShowParser(placeholder).Parse(reader)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(shows) != 2 {
				t.Fatalf("Expected 2 shows, got %d", len(shows))
			}
			if shows[1].Name != "Pokémon" {
				t.Errorf("Expected %q, got %q", "Pokémon", shows[1].Name)
			}
			if shows[1].Summary != "<p>Gotta catch ’em all</p>" {
				t.Errorf("Expected summary to pass through, got %q", shows[1].Summary)
			}
		})
	}
}
