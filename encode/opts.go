package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level (default 2).
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Delimiter sets the value separator: "," (default), "\t" or "|".
// A non-comma delimiter is echoed inside array-length brackets.
func Delimiter(d string) EncodeOption {
	return func(es *EncState) { es.delim = d }
}

// LengthMarker prefixes array lengths with '#' when set.
func LengthMarker(v bool) EncodeOption {
	return func(es *EncState) { es.marker = v }
}

// EncodeColors turns on terminal colorization of the output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
