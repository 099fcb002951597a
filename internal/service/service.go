// Package service wires the extractors, scorers and search collector into
// the four user-facing pipelines: comparison, recommendation, review
// summary and guided taste recommendation.
package service

import (
	"context"
	"strings"

	"github.com/cloo-solutions/shopmate/internal/llm"
)

// Marketplace describes the preferred store every pipeline is biased toward.
type Marketplace struct {
	// Domain is matched against result URLs, e.g. musinsa.com.
	Domain string
	// Label is the store name used when phrasing queries, e.g. 무신사.
	Label string
	// Sites restricts product-page searches. Empty means Domain and
	// www.Domain.
	Sites []string
}

func (m Marketplace) sites() []string {
	if len(m.Sites) > 0 {
		return append([]string(nil), m.Sites...)
	}
	return []string{m.Domain, "www." + m.Domain}
}

func (m Marketplace) label() string {
	if m.Label != "" {
		return m.Label
	}
	return m.Domain
}

// ownsURL reports whether url is on the marketplace domain.
func (m Marketplace) ownsURL(url string) bool {
	return m.Domain != "" && strings.Contains(strings.ToLower(url), strings.ToLower(m.Domain))
}

// KeywordExtractor pulls taste keywords out of a free-form description.
type KeywordExtractor interface {
	ExtractKeywords(ctx context.Context, input string) ([]string, error)
}

// RelevanceJudge scores a product against taste keywords.
type RelevanceJudge interface {
	JudgeRelevance(ctx context.Context, keywords []string, title, content string) (llm.Judgement, error)
}

// LLM is the optional language model collaborator.
type LLM interface {
	KeywordExtractor
	RelevanceJudge
}
