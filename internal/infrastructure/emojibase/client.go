// Package emojibase loads the emojibase emoji dataset over HTTP or from disk.
package emojibase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/bnema/emicon/internal/domain/entity"
	"github.com/bnema/emicon/internal/domain/repository"
	"github.com/bnema/emicon/internal/logging"
)

const (
	// DefaultURLTemplate is the jsDelivr mirror of the emojibase-data package.
	DefaultURLTemplate = "https://cdn.jsdelivr.net/npm/emojibase-data@latest/{locale}/data.json"
	// DefaultLocale is the dataset locale.
	DefaultLocale = "en"
	// DefaultTimeout bounds the dataset request.
	DefaultTimeout = 15 * time.Second

	localePlaceholder = "{locale}"
	// maxDatasetBytes caps the response body; the en dataset is a few MB.
	maxDatasetBytes = 64 << 20
)

// record is the subset of an emojibase entry Emicon reads.
type record struct {
	Emoji      string  `json:"emoji"`
	Label      string  `json:"label"`
	Annotation string  `json:"annotation"`
	Version    float64 `json:"version"`
}

// Client fetches the dataset from a CDN.
type Client struct {
	client *http.Client
	url    string
}

// ClientOptions configures a Client.
type ClientOptions struct {
	URLTemplate string
	Locale      string
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// NewClient creates a CDN client. Empty options fall back to the defaults.
func NewClient(opts ClientOptions) *Client {
	tmpl := opts.URLTemplate
	if tmpl == "" {
		tmpl = DefaultURLTemplate
	}
	locale := opts.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		client: httpClient,
		url:    strings.ReplaceAll(tmpl, localePlaceholder, locale),
	}
}

// URL returns the resolved dataset URL.
func (c *Client) URL() string {
	return c.url
}

// FetchAll implements repository.EmojiRepository. It issues a single request
// and does not retry.
func (c *Client) FetchAll(ctx context.Context) ([]entity.Emoji, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("url", c.url).Msg("fetching emoji dataset")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset: unexpected status %s", resp.Status)
	}

	emojis, err := Decode(io.LimitReader(resp.Body, maxDatasetBytes))
	if err != nil {
		return nil, err
	}

	log.Debug().Int("entries", len(emojis)).Msg("emoji dataset fetched")
	return emojis, nil
}

// FileSource reads the dataset from a local emojibase data.json.
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed dataset source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// FetchAll implements repository.EmojiRepository.
func (s *FileSource) FetchAll(ctx context.Context) ([]entity.Emoji, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	emojis, err := Decode(f)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().Str("path", s.path).Int("entries", len(emojis)).Msg("emoji dataset read")
	return emojis, nil
}

// Decode parses an emojibase JSON array, keeping dataset order. Entries
// without a glyph are dropped; a missing label falls back to annotation.
// Labels are NFC-normalized so composed query text matches localized labels.
func Decode(r io.Reader) ([]entity.Emoji, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	emojis := make([]entity.Emoji, 0, len(records))
	for _, rec := range records {
		if rec.Emoji == "" {
			continue
		}
		label := rec.Label
		if label == "" {
			label = rec.Annotation
		}
		emojis = append(emojis, entity.Emoji{
			Glyph:   rec.Emoji,
			Label:   norm.NFC.String(label),
			Version: rec.Version,
		})
	}
	return emojis, nil
}

var (
	_ repository.EmojiRepository = (*Client)(nil)
	_ repository.EmojiRepository = (*FileSource)(nil)
)
