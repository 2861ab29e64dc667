package main

import (
	"fmt"
	"sort"
	"strconv"

	"gorm.io/gorm"
)

var optionLetters = []string{"A", "B", "C", "D"}

// Bank is the fixed in-memory question list, ordered by id.
type Bank struct {
	questions []Question
	byID      map[int]*Question
}

func NewBank(qs []Question) *Bank {
	out := append([]Question(nil), qs...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	b := &Bank{questions: out, byID: make(map[int]*Question, len(out))}
	for i := range b.questions {
		b.byID[b.questions[i].ID] = &b.questions[i]
	}
	return b
}

func LoadBank(db *gorm.DB) (*Bank, error) {
	var qs []Question
	if err := db.Preload("Options").Order("id").Find(&qs).Error; err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return NewBank(qs), nil
}

func (b *Bank) Len() int { return len(b.questions) }

func (b *Bank) Get(id int) (*Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// Lookup resolves a state key ("12") to its question.
func (b *Bank) Lookup(key string) (*Question, bool) {
	id, err := strconv.Atoi(key)
	if err != nil {
		return nil, false
	}
	return b.Get(id)
}

// HasDomainOrTopic reports whether any question carries breakdown metadata.
func (b *Bank) HasDomainOrTopic() bool {
	for _, q := range b.questions {
		if q.Domain != nil || q.Topic != nil {
			return true
		}
	}
	return false
}

// OptionText returns the text for letter, or "" if the question has no such option.
func (q *Question) OptionText(letter string) string {
	for _, o := range q.Options {
		if o.OptionKey == letter {
			return o.Text
		}
	}
	return ""
}

func (q *Question) CorrectLetter() string {
	return normalizeLetter(q.Answer)
}

func (q *Question) TopicText() string {
	switch {
	case q.Topic != nil && *q.Topic != "":
		return *q.Topic
	case q.Domain != nil:
		return fmt.Sprintf("Domain %d", *q.Domain)
	default:
		return "Topic"
	}
}
