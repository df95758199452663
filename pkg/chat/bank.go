// Package chat holds the scripted Spanish practice conversation: the topic
// question bank and the message session driven by the chat UI.
package chat

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

// ErrUnknownTopic is returned by Bank.Find.
var ErrUnknownTopic = errors.New("chat: unknown topic")

// Topic is a named set of conversation questions.
type Topic struct {
	Name      string   `yaml:"name"`
	Questions []string `yaml:"questions"`
}

// Bank is the ordered list of topics.
type Bank struct {
	Topics []Topic `yaml:"topics"`
}

// DefaultBank parses the embedded question bank.
func DefaultBank() (*Bank, error) {
	return ParseBank(questionsYAML)
}

// ParseBank reads a YAML bank. Every topic needs a name and one question.
func ParseBank(b []byte) (*Bank, error) {
	var bank Bank
	if err := yaml.Unmarshal(b, &bank); err != nil {
		return nil, fmt.Errorf("chat: parse question bank: %w", err)
	}
	if len(bank.Topics) == 0 {
		return nil, errors.New("chat: question bank has no topics")
	}
	for i, t := range bank.Topics {
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("chat: topic %d has no name", i)
		}
		if len(t.Questions) == 0 {
			return nil, fmt.Errorf("chat: topic %q has no questions", t.Name)
		}
	}
	return &bank, nil
}

// Names lists topic names in bank order.
func (b *Bank) Names() []string {
	names := make([]string, 0, len(b.Topics))
	for _, t := range b.Topics {
		names = append(names, t.Name)
	}
	return names
}

// Find looks a topic up by case-insensitive name or by 1-based position.
func (b *Bank) Find(key string) (Topic, error) {
	key = strings.TrimSpace(key)
	if n, err := strconv.Atoi(key); err == nil {
		if n >= 1 && n <= len(b.Topics) {
			return b.Topics[n-1], nil
		}
		return Topic{}, fmt.Errorf("%w: %d", ErrUnknownTopic, n)
	}
	for _, t := range b.Topics {
		if strings.EqualFold(t.Name, key) {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("%w: %q", ErrUnknownTopic, key)
}
