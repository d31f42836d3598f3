// Package metadata embeds a manifest block in rendered documents and verifies it.
//
// The block is an HTML comment holding a YAML document:
//
//	<!-- METADATA_START
//	version: "1"
//	validation: true
//	...
//	hash: <sha256 of the document without the block>
//	METADATA_END -->
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// TagStart is the start of the metadata block.
	TagStart = "<!-- METADATA_START"
	// TagEnd is the end of the metadata block.
	TagEnd = "METADATA_END -->"

	// Version is the manifest format version written by Sign.
	Version = "1"
)

// Metadata verification errors.
var (
	ErrNoMetadataBlock = errors.New("no metadata block found")
	ErrNoHashFound     = errors.New("no hash found in metadata")
	ErrHashMismatch    = errors.New("hash mismatch")
)

// Metadata is the side-channel summary of a rendered newsletter.
type Metadata struct {
	Version    string         `yaml:"version"`
	Validation bool           `yaml:"validation"`
	LastModify string         `yaml:"last_modify"`
	EditionID  string         `yaml:"edition_id,omitempty"`
	Week       string         `yaml:"week,omitempty"`
	Total      int            `yaml:"total"`
	Sources    map[string]int `yaml:"sources,omitempty"`
	Categories map[string]int `yaml:"categories,omitempty"`
	Hash       string         `yaml:"hash"`
}

// ModifiedAt parses LastModify. It returns the zero time when unset or malformed.
func (m *Metadata) ModifiedAt() time.Time {
	t, err := time.Parse(time.RFC3339, m.LastModify)
	if err != nil {
		return time.Time{}
	}

	return t
}

// metadataRegex matches the entire metadata block including tags.
var metadataRegex = regexp.MustCompile(`(?s)<!--\s*METADATA_START\s*\n(.*?)\n\s*METADATA_END\s*-->`)

// Extract removes the metadata block from content and returns both the metadata and the cleaned content.
// The cleaned content is what gets hashed. A block that fails to decode yields nil metadata.
func Extract(content string) (*Metadata, string) {
	match := metadataRegex.FindStringSubmatch(content)
	cleanContent := metadataRegex.ReplaceAllString(content, "")
	// Trim trailing newlines from cleaned content for consistent hashing
	cleanContent = strings.TrimRight(cleanContent, "\n")

	if len(match) < 2 {
		return nil, cleanContent
	}

	meta := &Metadata{}
	if err := yaml.Unmarshal([]byte(match[1]), meta); err != nil {
		return nil, cleanContent
	}

	return meta, cleanContent
}

// CalculateHash computes the SHA-256 hash of the content (excluding metadata).
func CalculateHash(content string) string {
	_, clean := Extract(content)
	hash := sha256.Sum256([]byte(clean))

	return hex.EncodeToString(hash[:])
}

// Sign replaces any existing metadata block with meta, stamped with a fresh hash and timestamp.
// A nil meta signs an empty manifest.
func Sign(content string, meta *Metadata) (string, error) {
	_, clean := Extract(content)

	block := Metadata{}
	if meta != nil {
		block = *meta
	}

	block.Version = Version
	block.LastModify = time.Now().UTC().Format(time.RFC3339)
	block.Hash = CalculateHash(clean)

	body, err := yaml.Marshal(&block)
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}

	newBlock := fmt.Sprintf("\n\n%s\n%s\n%s\n", TagStart, strings.TrimRight(string(body), "\n"), TagEnd)

	return clean + newBlock, nil
}

// Verify checks if the content matches the hash in its metadata.
func Verify(content string) (bool, error) {
	meta, clean := Extract(content)
	if meta == nil {
		return false, ErrNoMetadataBlock
	}

	if meta.Hash == "" {
		return false, ErrNoHashFound
	}

	calculated := CalculateHash(clean)
	if calculated != meta.Hash {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, meta.Hash, calculated)
	}

	return true, nil
}
