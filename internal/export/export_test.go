package export_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"todo/internal/export"
	"todo/internal/render"
	"todo/internal/testutil"
)

func sampleView() render.View {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return render.View{
		Items: []render.Item{
			{ID: "2", Text: "Write, \"quoted\" report", Completed: true, CreatedAt: created.Add(time.Minute)},
			{ID: "1", Text: "Buy milk", Completed: false, CreatedAt: created},
		},
		Stats: render.Stats{Total: 2, Completed: 1},
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := export.Write(&buf, "json", sampleView()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got struct {
		Tasks []struct {
			ID        string `json:"id"`
			Text      string `json:"text"`
			Completed bool   `json:"completed"`
		} `json:"tasks"`
		Stats render.Stats `json:"stats"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(got.Tasks) != 2 || got.Tasks[0].ID != "2" || !got.Tasks[0].Completed {
		t.Errorf("unexpected tasks %+v", got.Tasks)
	}
	if got.Stats != (render.Stats{Total: 2, Completed: 1}) {
		t.Errorf("unexpected stats %+v", got.Stats)
	}
}

func TestWrite_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := export.Write(&buf, "json", render.View{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"tasks": []`)) {
		t.Errorf("expected empty array, got %s", buf.String())
	}
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	if err := export.Write(&buf, "CSV", sampleView()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.GoldenString(t, "export_csv", buf.String())
}

func TestWrite_PDF(t *testing.T) {
	var buf bytes.Buffer
	if err := export.Write(&buf, "pdf", sampleView()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("expected PDF header, got %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := export.Write(&buf, "xml", sampleView())
	if !errors.Is(err, export.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestWrite_CSVWriteError(t *testing.T) {
	w := testutil.FailingWriter{Err: errors.New("broken pipe")}

	err := export.Write(w, "csv", sampleView())
	if err == nil || err.Error() != "broken pipe" {
		t.Errorf("expected broken pipe, got %v", err)
	}
}
