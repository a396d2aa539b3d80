// Package emoji downloads emoji bitmaps from an emoji CDN.
package emoji

import (
	"fmt"
	"image"
	"net/url"

	"github.com/Mavwarf/icongen/internal/alpha"
	"github.com/Mavwarf/icongen/internal/httputil"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// DefaultBaseURL is the emoji CDN the fetch pipeline uses unless configured
// otherwise. The emoji character is appended as a path segment.
const DefaultBaseURL = "https://emojicdn.elk.sh"

// Client fetches emoji images. The zero value uses DefaultBaseURL and the
// CDN's default style.
type Client struct {
	BaseURL string // CDN base URL; empty means DefaultBaseURL
	Style   string // optional ?style= parameter (e.g. "apple", "twitter")
}

// URL returns the request URL for one emoji character.
func (c Client) URL(char string) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u := base + "/" + url.PathEscape(char)
	if c.Style != "" {
		u += "?style=" + url.QueryEscape(c.Style)
	}
	return u
}

// Fetch downloads one emoji and decodes it to NRGBA. A single attempt is
// made: a transport error, non-2xx status or undecodable body is returned
// as an error with no retry.
func (c Client) Fetch(char string) (*image.NRGBA, error) {
	resp, err := httputil.Get(c.URL(char))
	if err != nil {
		return nil, fmt.Errorf("emoji: fetch %q: %w", char, err)
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(resp, "emoji: fetch"); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("emoji: decode %q: %w", char, err)
	}
	return alpha.ToNRGBA(img), nil
}
