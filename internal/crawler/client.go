package crawler

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"candidates/internal/models"
)

// Client reads saved pages from disk and extracts candidates from them.
type Client struct {
	parser *Parser
}

// NewClient creates a new client with a default parser.
func NewClient() *Client {
	return &Client{
		parser: NewParser(),
	}
}

// NewClientWithDeps creates a new client with an injected parser.
func NewClientWithDeps(parser *Parser) *Client {
	return &Client{
		parser: parser,
	}
}

// CrawlFile reads an HTML page and extracts every candidate row for office.
func (c *Client) CrawlFile(filePath string, office models.Office) ([]*models.Candidate, error) {
	if _, ok := layouts[office]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOffice, office)
	}

	content, size, elapsed, err := c.ReadLocalFileWithMetrics(filePath)
	if err != nil {
		return nil, err
	}

	c.parser.log.Debug("read page", "path", filePath, "bytes", size, "duration", elapsed)

	doc, err := ParseHTML(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	return c.parser.ExtractAll(doc, office), nil
}

// ReadLocalFileWithMetrics returns (content, fileSize, duration, error).
func (c *Client) ReadLocalFileWithMetrics(filePath string) ([]byte, int64, time.Duration, error) {
	startTime := time.Now()

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, 0, time.Since(startTime), fmt.Errorf("failed to stat file %s: %w", filePath, err)
	}

	content, err := os.ReadFile(filePath)
	duration := time.Since(startTime)

	if err != nil {
		return nil, 0, duration, fmt.Errorf("failed to read local file %s: %w", filePath, err)
	}

	return content, fileInfo.Size(), duration, nil
}
