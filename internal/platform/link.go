package platform

import (
	"regexp"
	"strings"

	"github.com/ytget/yt-downloader-bot/internal/model"
)

// Known video-sharing hostnames
var (
	DefaultLinkHosts = []string{"youtube.com", "youtu.be", "youtube.com/shorts"}
)

// LinkMatcher recognizes messages that carry a supported video link
type LinkMatcher struct {
	pattern *regexp.Regexp
}

// NewLinkMatcher builds a matcher for
// optional scheme + optional "www." + host + "/" + any remaining path.
// Hostnames are matched case-sensitively as given.
func NewLinkMatcher(hosts ...string) *LinkMatcher {
	if len(hosts) == 0 {
		hosts = DefaultLinkHosts
	}

	quoted := make([]string, 0, len(hosts))
	for _, host := range hosts {
		quoted = append(quoted, regexp.QuoteMeta(host))
	}

	return &LinkMatcher{
		pattern: regexp.MustCompile(`^(https?://)?(www\.)?(` + strings.Join(quoted, "|") + `)/.+`),
	}
}

// Match returns the trimmed link from text or model.ErrUnrecognizedLink
func (m *LinkMatcher) Match(text string) (string, error) {
	url := strings.TrimSpace(text)
	if !m.pattern.MatchString(url) {
		return "", model.ErrUnrecognizedLink
	}
	return url, nil
}
