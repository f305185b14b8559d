package parser

import (
	"strconv"
	"strings"
	"testing"

	"github.com/Belphemur/ShowFinder/internal/models"
)

const placeholder = "https://tinyurl.com/tv-missing"

func TestShowParser_Parse_Batman(t *testing.T) {
	t.Parallel()
	body := `[
		{"score": 0.91, "show": {"id": 975, "name": "Batman", "summary": "<p>Wealthy <b>Bruce Wayne</b>...</p>",
			"image": {"medium": "https://static.tvmaze.com/uploads/images/medium_portrait/6/16463.jpg", "original": "https://static.tvmaze.com/uploads/images/original_untouched/6/16463.jpg"}}},
		{"score": 0.62, "show": {"id": 40138, "name": "Batman Unlimited", "summary": null, "image": null}}
	]`

	shows, err := NewShowParser(placeholder).Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []models.Show{
		{
			ID:      975,
			Name:    "Batman",
			Summary: "<p>Wealthy <b>Bruce Wayne</b>...</p>",
			Image:   "https://static.tvmaze.com/uploads/images/medium_portrait/6/16463.jpg",
		},
		{ID: 40138, Name: "Batman Unlimited", Summary: "", Image: placeholder},
	}

	if len(shows) != len(expected) {
		t.Fatalf("Expected %d shows, got %d", len(expected), len(shows))
	}
	for i := range expected {
		if shows[i] != expected[i] {
			t.Errorf("Show %d: expected %+v, got %+v", i, expected[i], shows[i])
		}
	}
}

func TestShowParser_Parse_ImageVariants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		imageJSON string
		want      string
	}{
		{name: "missing key", imageJSON: ``, want: placeholder},
		{name: "null image", imageJSON: `, "image": null`, want: placeholder},
		{name: "empty medium", imageJSON: `, "image": {"medium": "", "original": "https://img/o.jpg"}`, want: placeholder},
		{name: "medium present", imageJSON: `, "image": {"medium": "https://img/m.jpg"}`, want: "https://img/m.jpg"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			body := `[{"show": {"id": 1, "name": "X"` + tt.imageJSON + `}}]`
			shows, err := NewShowParser(placeholder).Parse(strings.NewReader(body))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(shows) != 1 {
				t.Fatalf("Expected 1 show, got %d", len(shows))
			}
			if shows[0].Image != tt.want {
				t.Errorf("Expected image %q, got %q", tt.want, shows[0].Image)
			}
		})
	}
}

func TestShowParser_Parse_KeepsOrder(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	sb.WriteString("[")
	ids := []int{5, 3, 9, 1, 7}
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"show":{"id":`)
		sb.WriteString(strconv.Itoa(id))
		sb.WriteString(`,"name":"s"}}`)
	}
	sb.WriteString("]")

	shows, err := NewShowParser(placeholder).Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(shows) != len(ids) {
		t.Fatalf("Expected %d shows, got %d", len(ids), len(shows))
	}
	for i, id := range ids {
		if shows[i].ID != id {
			t.Errorf("Position %d: expected ID %d, got %d", i, id, shows[i].ID)
		}
	}
}

func TestShowParser_Parse_Empty(t *testing.T) {
	t.Parallel()
	shows, err := NewShowParser(placeholder).Parse(strings.NewReader(`[]`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if shows == nil || len(shows) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", shows)
	}
}

func TestShowParser_Parse_Malformed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>oops</html>`},
		{name: "object instead of list", body: `{"show": {}}`},
		{name: "missing show", body: `[{"score": 1}]`},
		{name: "bad id", body: `[{"show": {"id": "abc"}}]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewShowParser(placeholder).Parse(strings.NewReader(tt.body)); err == nil {
				t.Fatal("Expected error, got nil")
			}
		})
	}
}

func TestNewShowParser_DefaultPlaceholder(t *testing.T) {
	t.Parallel()
	shows, err := NewShowParser("").Parse(strings.NewReader(`[{"show":{"id":1,"name":"x"}}]`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if shows[0].Image != placeholder {
		t.Errorf("Expected default placeholder, got %q", shows[0].Image)
	}
}
