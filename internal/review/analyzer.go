// Package review turns collected review snippets into topic-grouped pros and
// cons using the sentiment and topic keyword tables.
package review

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cloo-solutions/shopmate/internal/catalog"
	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/extract"
)

const (
	maxTextLength     = 4000
	minSentenceLength = 10
	maxSentenceLength = 100
	keptPerTopic      = 3
	shownPerTopic     = 2
	summaryLength     = 50
	maxPoints         = 5
)

var sentenceBreak = regexp.MustCompile(`[.!?]\s+`)

// Analyzer classifies review sentences by sentiment and topic.
type Analyzer struct {
	topics   []catalog.Category
	positive []string
	negative []string
}

// NewAnalyzer creates an Analyzer over the catalog tables.
func NewAnalyzer() *Analyzer {
	topics := catalog.ReviewTopics()
	for i := range topics {
		for j, s := range topics[i].Synonyms {
			topics[i].Synonyms[j] = strings.ToLower(s)
		}
	}
	return &Analyzer{
		topics:   topics,
		positive: catalog.PositiveWords(),
		negative: catalog.NegativeWords(),
	}
}

// topicPoints collects sentences per topic in first-seen topic order.
type topicPoints struct {
	order     []string
	sentences map[string][]string
}

func newTopicPoints() *topicPoints {
	return &topicPoints{sentences: make(map[string][]string)}
}

func (p *topicPoints) add(topic, sentence string) {
	list, ok := p.sentences[topic]
	if !ok {
		p.order = append(p.order, topic)
	}
	if len(list) < keptPerTopic {
		p.sentences[topic] = append(list, sentence)
	}
}

func (p *topicPoints) points() []domain.ReviewPoint {
	out := []domain.ReviewPoint{}
	for _, topic := range p.order {
		list := p.sentences[topic]
		if len(list) > shownPerTopic {
			list = list[:shownPerTopic]
		}
		for _, s := range list {
			out = append(out, domain.ReviewPoint{Topic: topic, Summary: extract.Truncate(s, summaryLength)})
		}
	}
	if len(out) > maxPoints {
		out = out[:maxPoints]
	}
	return out
}

// Analyze summarizes reviews of product. Sentences with more positive than
// negative words become pros, the reverse become cons and ties are ignored.
func (a *Analyzer) Analyze(product string, reviews []string) domain.ReviewSummary {
	summary := domain.ReviewSummary{
		Product:     product,
		ReviewCount: len(reviews),
		Pros:        []domain.ReviewPoint{},
		Cons:        []domain.ReviewPoint{},
	}
	if len(reviews) == 0 {
		return summary
	}

	text := extract.Normalize(strings.Join(reviews, "\n\n"))
	if utf8.RuneCountInString(text) > maxTextLength {
		text = extract.Truncate(text, maxTextLength) + "..."
	}

	pros, cons := newTopicPoints(), newTopicPoints()
	for _, sentence := range sentenceBreak.Split(text, -1) {
		n := utf8.RuneCountInString(sentence)
		if n < minSentenceLength || n >= maxSentenceLength {
			continue
		}
		lower := strings.ToLower(sentence)
		pos, neg := countContained(lower, a.positive), countContained(lower, a.negative)

		switch {
		case pos > neg:
			pros.add(a.topic(lower), strings.TrimSpace(sentence))
		case neg > pos:
			cons.add(a.topic(lower), strings.TrimSpace(sentence))
		}
	}

	summary.Pros = pros.points()
	summary.Cons = cons.points()
	return summary
}

func (a *Analyzer) topic(lower string) string {
	for _, t := range a.topics {
		for _, s := range t.Synonyms {
			if strings.Contains(lower, s) {
				return t.Name
			}
		}
	}
	return catalog.OtherTopic
}

func countContained(text string, words []string) int {
	var n int
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}
