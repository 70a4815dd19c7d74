package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("getting-started")
	if err != nil {
		t.Fatalf("GetTopic(getting-started) error = %v", err)
	}
	if !strings.Contains(content, "stash init") {
		t.Errorf("getting-started topic does not mention `stash init`")
	}

	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Errorf("GetTopic(no-such-topic) succeeded, want error")
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, want := range []string{"getting-started", "records"} {
		found := false
		for _, topic := range topics {
			if topic == want {
				found = true
			}
		}
		if !found {
			t.Errorf("GetAllTopics() = %v, missing %q", topics, want)
		}
	}
}

func TestGetTopics_Star(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) error = %v", err)
	}
	for _, want := range []string{"stash init", "records file"} {
		if !strings.Contains(strings.ToLower(all), want) {
			t.Errorf("GetTopics(*) output missing %q", want)
		}
	}
}

// Every embedded topic must at least parse as markdown.
func TestTopics_ParseAsMarkdown(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	md := goldmark.New()
	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("GetTopic(%q) error = %v", topic, err)
			}
			doc := md.Parser().Parse(text.NewReader([]byte(content)))
			if doc == nil || !doc.HasChildren() {
				t.Errorf("topic %q parsed to an empty document", topic)
			}
		})
	}
}
