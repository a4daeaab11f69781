// Package metadata signs rendered snippets with a provenance block and verifies it.
// The block is an HTML comment, so it is inert inside wikitext.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// TagStart is the start of the provenance block.
	TagStart = "<!-- PROVENANCE_START"
	// TagEnd is the end of the provenance block.
	TagEnd = "PROVENANCE_END -->"
)

// Provenance verification errors.
var (
	ErrNoMetadataBlock = errors.New("no provenance block found")
	ErrNoHashFound     = errors.New("no hash found in provenance block")
	ErrHashMismatch    = errors.New("hash mismatch")
)

// Metadata describes where a rendered snippet came from.
type Metadata struct {
	LastModify time.Time
	Source     string
	Hash       string
	Records    int
	Validation bool
}

var metadataRegex = regexp.MustCompile(`(?s)\n*<!--\s*PROVENANCE_START\s*\n(.*?)\n\s*PROVENANCE_END\s*-->\n*`)

// now is replaced in tests.
var now = time.Now

// Extract removes the provenance block and returns it with the remaining
// content. The remaining content is what gets hashed.
func Extract(content string) (*Metadata, string) {
	match := metadataRegex.FindStringSubmatch(content)
	clean := strings.TrimRight(metadataRegex.ReplaceAllString(content, "\n"), "\n")

	if len(match) < 2 {
		return nil, clean
	}

	meta := &Metadata{}

	for line := range strings.SplitSeq(match[1], "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		switch key {
		case "VALIDATION":
			meta.Validation = strings.EqualFold(val, "TRUE")
		case "LAST_MODIFY":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				meta.LastModify = t
			}
		case "HASH":
			meta.Hash = val
		case "SOURCE":
			meta.Source = val
		case "RECORDS":
			meta.Records, _ = strconv.Atoi(val)
		}
	}

	return meta, clean
}

// CalculateHash computes the SHA-256 of the content without its provenance block.
func CalculateHash(content string) string {
	_, clean := Extract(content)
	hash := sha256.Sum256([]byte(clean))

	return hex.EncodeToString(hash[:])
}

// Sign replaces any existing provenance block with a fresh one carrying
// meta's source, record count and validation flag.
func Sign(content string, meta Metadata) string {
	_, clean := Extract(content)

	valStr := "FALSE"
	if meta.Validation {
		valStr = "TRUE"
	}

	var b strings.Builder

	b.WriteString(clean)
	b.WriteString("\n\n")
	b.WriteString(TagStart + "\n")

	if meta.Source != "" {
		fmt.Fprintf(&b, "SOURCE: %s\n", meta.Source)
	}

	fmt.Fprintf(&b, "RECORDS: %d\n", meta.Records)
	fmt.Fprintf(&b, "VALIDATION: %s\n", valStr)
	fmt.Fprintf(&b, "LAST_MODIFY: %s\n", now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "HASH: %s\n", CalculateHash(clean))
	b.WriteString(TagEnd + "\n")

	return b.String()
}

// Verify checks the content against the hash in its provenance block.
func Verify(content string) (*Metadata, error) {
	meta, clean := Extract(content)
	if meta == nil {
		return nil, ErrNoMetadataBlock
	}

	if meta.Hash == "" {
		return meta, ErrNoHashFound
	}

	calculated := CalculateHash(clean)
	if calculated != meta.Hash {
		return meta, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, meta.Hash, calculated)
	}

	return meta, nil
}
