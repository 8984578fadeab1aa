package convert

import "strings"

// Prefix namespaces all GPX-derived OSM tag keys.
const Prefix = "gpx:"

// Abbreviations maps verbose extension keys to their short, well-known
// spellings. Callers may extend it with vendor-specific entries before
// converting.
var Abbreviations = map[string]string{}

// AttributeKey builds the tag key for a plain GPX attribute.
func AttributeKey(key string) string {
	return Prefix + key
}

// ExtensionKey builds the tag key for a GPX extension value. Extension keys
// carry their namespace prefix, and segment extensions are distinguished from
// track extensions since both end up on the same resulting way.
func ExtensionKey(nsPrefix, flatKey string, segment bool) string {
	if nsPrefix == "" {
		nsPrefix = "other"
	}
	var b strings.Builder
	b.WriteString(Prefix)
	b.WriteString("extension:")
	b.WriteString(nsPrefix)
	b.WriteString(":")
	if segment {
		b.WriteString("segment:")
	}
	b.WriteString(flatKey)

	key := b.String()
	if abbr, ok := Abbreviations[key]; ok {
		return abbr
	}
	return key
}

// StripPrefix removes the GPX namespace prefix from a tag key, returning the
// key unchanged when it is not namespaced.
func StripPrefix(key string) string {
	return strings.TrimPrefix(key, Prefix)
}
