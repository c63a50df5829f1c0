package encode

type EncodeOption func(*EncState)

// EncodeIndent spreads objects and arrays over several lines, indenting each
// level by n spaces.  Zero gives the single line projection.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeStrict escapes strings so the output is valid JSON, and rejects
// numbers JSON cannot represent.
func EncodeStrict(v bool) EncodeOption {
	return func(es *EncState) { es.strict = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
