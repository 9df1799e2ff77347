package webscrape

import (
	"net/url"
	"strings"
)

// Resolve converts ref into an absolute URL using base as the page it was
// found on. References that already carry a scheme are returned unchanged,
// protocol-relative references inherit the scheme of base, root-relative
// references keep only the origin of base, and anything else is appended
// to base with a single slash.
//
// Returns EEMPTYREF for an empty ref and EINVALIDURL when the result lacks
// a scheme or host.
func Resolve(base, ref string) (string, error) {
	if ref == "" {
		return "", Errorf(EEMPTYREF, "empty reference")
	}

	var resolved string
	switch {
	case hasScheme(ref):
		resolved = ref
	case strings.HasPrefix(ref, "//"):
		u, err := url.Parse(base)
		if err != nil || u.Scheme == "" {
			return "", Errorf(EINVALIDURL, "invalid base URL %q", base)
		}
		resolved = u.Scheme + ":" + ref
	case strings.HasPrefix(ref, "/"):
		origin, err := Origin(base)
		if err != nil {
			return "", err
		}
		resolved = origin + ref
	default:
		resolved = strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
	}

	if !IsValid(resolved) {
		return "", Errorf(EINVALIDURL, "invalid URL %q", resolved)
	}
	return resolved, nil
}

// IsValid reports whether rawURL parses with a non-empty scheme and host.
func IsValid(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Origin returns the scheme://host portion of rawURL.
func Origin(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", Errorf(EINVALIDURL, "invalid URL %q", rawURL)
	}
	return u.Scheme + "://" + u.Host, nil
}

// SameOrigin reports whether a and b share scheme and host.
// Hosts compare case-insensitively. Unparseable URLs are never same-origin.
func SameOrigin(a, b string) bool {
	oa, err := Origin(a)
	if err != nil {
		return false
	}
	ob, err := Origin(b)
	if err != nil {
		return false
	}
	return strings.EqualFold(oa, ob)
}

func hasScheme(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return u.Scheme != ""
}
