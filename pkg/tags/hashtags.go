package tags

import "strings"

// SanitizeHashtags splits a semicolon-separated hashtag list, prefixes each
// token with '#' if not already present, and deduplicates while preserving
// order. Empty tokens are skipped.
func SanitizeHashtags(hashtags string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, token := range strings.Split(hashtags, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if !strings.HasPrefix(token, "#") {
			token = "#" + token
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

// AppendHashtags appends the sanitized hashtags of a dataset-declared
// hashtags value to the given comment, space-joined. The comment is returned
// unchanged when no hashtags exist.
func AppendHashtags(comment, hashtags string) string {
	sanitized := SanitizeHashtags(hashtags)
	if len(sanitized) == 0 {
		return comment
	}
	joined := strings.Join(sanitized, " ")
	if comment == "" {
		return joined
	}
	return comment + " " + joined
}
