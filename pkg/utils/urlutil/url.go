// ABOUTME: Strict URL validation shared by the source-bearing elements
// ABOUTME: Distinguishes "this is a URL" from "this is raw embed markup"

package urlutil

import (
	"net/url"
	"strings"
)

// IsValidURL reports whether s parses as an absolute URL with both a scheme
// and a host. Several elements (Ad, Analytics, Interactive, SocialEmbed)
// branch on this to decide between iframe-src mode and inline-embed mode.
func IsValidURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	return err == nil && u.Scheme != "" && u.Host != ""
}
