package content

import (
	"encoding/json"
	"fmt"
	"os"
)

// Meta describes the content item the questions belong to. Grade, age,
// subject and topic are forwarded to the grading collaborator so feedback
// matches the learner.
type Meta struct {
	ContentID string `json:"content_id"`
	Title     string `json:"title"`
	Grade     string `json:"grade"`
	Age       int    `json:"age"`
	Subject   string `json:"subject"`
	Topic     string `json:"topic"`
}

// Item is one content file: metadata plus its ordered question records.
type Item struct {
	Meta      `json:"meta"`
	Questions []Record `json:"questions"`
}

// Store supplies question records for a content item. The player only
// reads from it.
type Store interface {
	Load(contentID string) (*Item, error)
}

// LoadFile reads a content item from a JSON file.
func LoadFile(path string) (*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	var item Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("parse content file %s: %w", path, err)
	}

	if item.Meta.Title == "" {
		item.Meta.Title = path
	}

	return &item, nil
}

// FileStore is a Store that treats content IDs as file paths.
type FileStore struct{}

func (FileStore) Load(contentID string) (*Item, error) {
	return LoadFile(contentID)
}
