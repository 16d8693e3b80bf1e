package validator

import (
	"net/url"
	"regexp"
	"strings"
)

// Unsafe scheme fragments rejected outright, matched case-insensitively
// anywhere in the input.
var maliciousPatterns = []string{
	"javascript:",
	"data:",
	"vbscript:",
	"file:",
	"ftp:",
}

// Known URL-shortening hosts. Matching one makes the URL suspicious but not
// invalid; the caller gets an advisory warning instead of a rejection.
var suspiciousDomains = []string{
	"bit.ly",
	"tinyurl.com",
	"short.link",
	"ow.ly",
	"t.co",
}

var httpPrefix = regexp.MustCompile(`(?i)^https?://`)

var sanitizer = strings.NewReplacer("<", "", ">", "", "'", "", `"`, "")

// Result is the outcome of classifying a raw URL string.
type Result struct {
	IsValid       bool   `json:"is_valid"`
	IsSafe        bool   `json:"is_safe"`
	NormalizedURL string `json:"normalized_url,omitempty"`
	Error         string `json:"error,omitempty"` // rejection reason or advisory warning
}

// Validate classifies a raw input string as valid, invalid or suspicious and
// normalizes it to an absolute http(s) URL. Input without a scheme is assumed
// to be https.
func Validate(raw string) Result {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Result{Error: "URL cannot be empty"}
	}

	lowered := strings.ToLower(trimmed)
	for _, pattern := range maliciousPatterns {
		if strings.Contains(lowered, pattern) {
			return Result{Error: "URL contains potentially malicious content"}
		}
	}

	normalized := trimmed
	if !httpPrefix.MatchString(trimmed) {
		normalized = "https://" + trimmed
	}

	parsed, err := url.Parse(normalized)
	if err != nil || parsed.Host == "" {
		return Result{Error: "Invalid URL format"}
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Result{Error: "Only HTTP and HTTPS URLs are allowed"}
	}

	host := strings.ToLower(parsed.Hostname())
	for _, domain := range suspiciousDomains {
		if strings.Contains(host, domain) {
			return Result{
				IsValid:       true,
				NormalizedURL: normalized,
				Error:         "This appears to be a shortened URL. Consider using the original URL instead.",
			}
		}
	}

	return Result{IsValid: true, IsSafe: true, NormalizedURL: normalized}
}

// Sanitize strips angle brackets and quotes from the input. Applied right
// before a record is built, independently of Validate.
func Sanitize(raw string) string {
	return sanitizer.Replace(strings.TrimSpace(raw))
}
