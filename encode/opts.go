package encode

type decodeConfig struct {
	timestamps   bool
	sanitizeKeys bool
}

type DecodeOption func(*decodeConfig)

// Timestamps controls whether RFC 3339 strings decode to time nodes
// rather than string nodes.  On by default.
func Timestamps(v bool) DecodeOption {
	return func(c *decodeConfig) { c.timestamps = v }
}

// SanitizedKeys runs every decoded object through a construction-time key
// pass: keys are reduced to their alphanumeric canonical form, the first
// occurrence of a sanitized name keeps it, and each later collision gets
// the next unused numeric suffix (2, 3, ...) in encounter order.
func SanitizedKeys() DecodeOption {
	return func(c *decodeConfig) { c.sanitizeKeys = true }
}

type encodeConfig struct {
	indent   string
	sortKeys bool
}

type EncodeOption func(*encodeConfig)

// Indent enables pretty printing with the given unit of indentation.
func Indent(s string) EncodeOption {
	return func(c *encodeConfig) { c.indent = s }
}

// SortKeys orders object keys case-insensitively instead of keeping
// insertion order, for stable textual comparison.
func SortKeys(v bool) EncodeOption {
	return func(c *encodeConfig) { c.sortKeys = v }
}
