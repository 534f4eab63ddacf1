// Package knowledge loads the reference documents used to ground chat
// answers. The corpus is a flat directory of .txt files, read once at
// startup and immutable afterwards.
package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// Corpus is an ordered collection of reference documents.
type Corpus struct {
	docs []Document
}

// Document is one reference text with its source name.
type Document struct {
	Name string
	Text string
}

// LoadDir reads every .txt file directly under dir, sorted by name for
// deterministic ordering. Unreadable files are skipped; a missing or empty
// directory yields an empty corpus, not an error.
func LoadDir(dir string) (*Corpus, error) {
	if dir == "" {
		return &Corpus{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &Corpus{}, nil
		}
		return nil, fmt.Errorf("read knowledge dir: %w", err)
	}

	corpus := &Corpus{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		corpus.docs = append(corpus.docs, Document{
			Name: entry.Name(),
			Text: string(data),
		})
	}

	sort.Slice(corpus.docs, func(i, j int) bool {
		return corpus.docs[i].Name < corpus.docs[j].Name
	})

	return corpus, nil
}

// Len returns the number of documents in the corpus.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// Documents returns the documents in name order.
func (c *Corpus) Documents() []Document {
	out := make([]Document, len(c.docs))
	copy(out, c.docs)
	return out
}

// Context concatenates up to maxDocs documents, each truncated to maxBytes,
// for use as prompt grounding.
func (c *Corpus) Context(maxDocs, maxBytes int) string {
	if maxDocs <= 0 || maxBytes <= 0 {
		return ""
	}

	var parts []string
	for i, doc := range c.docs {
		if i >= maxDocs {
			break
		}
		parts = append(parts, truncateOnRune(doc.Text, maxBytes))
	}
	return strings.Join(parts, "\n\n")
}

// truncateOnRune cuts text to at most maxBytes without splitting a UTF-8
// sequence mid-rune.
func truncateOnRune(text string, maxBytes int) string {
	if len(text) <= maxBytes {
		return text
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
