// Package parse reads JSON or YAML text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// YAML input
//	node, err := parse.Parse(data, parse.ParseFormat(format.YAMLFormat))
//
// All failures wrap ErrInvalidInput and carry the underlying parser
// detail.
//
// # Related Packages
//
//   - github.com/toon-format/go-toon/ir - IR representation
//   - github.com/toon-format/go-toon/encode - Encode IR to TOON text
package parse
