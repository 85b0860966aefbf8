package render_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"todo/internal/render"
)

func item(id, text string, completed bool) render.Item {
	return render.Item{
		ID:        id,
		Text:      text,
		Completed: completed,
		CreatedAt: time.Unix(0, 0),
		HTML:      render.EscapeHTML(text),
	}
}

func TestText_RenderItems(t *testing.T) {
	var buf bytes.Buffer
	r := render.NewText(&buf)

	if err := r.RenderItems([]render.Item{item("2", "Buy eggs", true), item("1", "Buy milk", false)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.PublishStats(render.Stats{Total: 2, Completed: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "   1  [x] Buy eggs\n   2  [ ] Buy milk\n2 total, 1 completed\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestText_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := render.NewText(&buf)

	_ = r.RenderItems(nil)
	_ = r.PublishStats(render.Stats{})

	expected := "no tasks found\n0 total, 0 completed\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatItem_Normalization(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", "Buy milk", "   7  [ ] Buy milk\n"},
		{"newlines", "line one\nline two\r\nthree", "   7  [ ] line one line two  three\n"},
		{"blank", "   ", "   7  [ ] (untitled)\n"},
		{"markup is shown raw", "<b>bold</b>", "   7  [ ] <b>bold</b>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := render.FormatItem(&buf, 7, item("x", tt.text, false)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	got := string(render.EscapeHTML(`<script>alert("x")</script> & co`))
	want := "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt; &amp; co"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSnapshot_ViewIsCopy(t *testing.T) {
	s := render.NewSnapshot()
	items := []render.Item{item("1", "A", false)}
	_ = s.RenderItems(items)
	_ = s.PublishStats(render.Stats{Total: 1})

	items[0].Text = "mutated"
	v := s.View()
	if v.Items[0].Text != "A" {
		t.Errorf("snapshot shares caller's slice: %q", v.Items[0].Text)
	}

	v.Items[0].Text = "mutated again"
	if s.View().Items[0].Text != "A" {
		t.Error("View returned shared slice")
	}
	if s.View().Stats.Total != 1 {
		t.Errorf("expected total 1, got %d", s.View().Stats.Total)
	}
}

func TestWritePage_EscapesTaskText(t *testing.T) {
	var buf bytes.Buffer
	v := render.View{
		Items: []render.Item{item("123", "<script>alert(1)</script>", true)},
		Stats: render.Stats{Total: 1, Completed: 1},
	}

	if err := render.WritePage(&buf, v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page := buf.String()

	if strings.Contains(page, "<script>alert(1)</script>") {
		t.Error("task text was not escaped")
	}
	if !strings.Contains(page, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Error("expected escaped task text exactly once")
	}
	if strings.Contains(page, "&amp;lt;") {
		t.Error("task text was escaped twice")
	}
	for _, want := range []string{
		`action="/tasks/123/toggle"`,
		`action="/tasks/123/delete"`,
		`class="task-item completed"`,
		`<span id="total-count">1</span>`,
		`<span id="completed-count">1</span>`,
		`name="text"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestDiscard(t *testing.T) {
	if err := render.Discard.RenderItems([]render.Item{item("1", "A", false)}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := render.Discard.PublishStats(render.Stats{Total: 1}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWritePage_PathEscapesIDs(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"a b", `action="/tasks/a%20b/toggle"`},
		{"a/b", `action="/tasks/a%2Fb/toggle"`},
		{"é", `action="/tasks/%C3%A9/toggle"`},
		{"50%", `action="/tasks/50%25/toggle"`},
		{"q?x#y", `action="/tasks/q%3Fx%23y/toggle"`},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		v := render.View{Items: []render.Item{item(tt.id, "task", false)}}
		if err := render.WritePage(&buf, v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("id %q: page missing %s", tt.id, tt.want)
		}
	}
}
