// Package encode renders IR nodes as TOON text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode with options
//	err := encode.Encode(node, w, encode.Delimiter("|"), encode.LengthMarker(true))
//
// # Related Packages
//
//   - github.com/toon-format/go-toon/ir - IR representation
//   - github.com/toon-format/go-toon/parse - Parse JSON/YAML to IR
package encode
