package content

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleContent = `{
  "meta": {
    "content_id": "hist-colonia-01",
    "title": "Brasil Colônia",
    "grade": "4º ano",
    "age": 9,
    "subject": "História",
    "topic": "Colonização"
  },
  "questions": [
    {"text": "Qual produto iniciou a colonização?", "options": ["Pau-brasil", "Café", "Ouro"], "correct_index": 0},
    {"text": "O que era o escambo?", "kind": "discursiva", "grading_guideline": "Troca de mercadorias sem moeda."}
  ]
}`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, []byte(sampleContent), 0o644); err != nil {
		t.Fatal(err)
	}

	item, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if item.Meta.ContentID != "hist-colonia-01" {
		t.Errorf("ContentID = %q", item.Meta.ContentID)
	}
	if item.Meta.Age != 9 {
		t.Errorf("Age = %d, want 9", item.Meta.Age)
	}
	if len(item.Questions) != 2 {
		t.Fatalf("len(Questions) = %d, want 2", len(item.Questions))
	}
	if item.Questions[0].Detect() != KindChoice {
		t.Errorf("Questions[0] kind = %v, want KindChoice", item.Questions[0].Detect())
	}
	if item.Questions[1].Detect() != KindDiscursive {
		t.Errorf("Questions[1] kind = %v, want KindDiscursive", item.Questions[1].Detect())
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFile_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
