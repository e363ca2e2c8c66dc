// Package textsource implements the text-source boundary object a
// buffer is constructed from, carrying the initial bytes, BOM, EOL
// convention, and ASCII/RTL hints, plus the absolute byte offsets of
// every '\n' in the text.
//
// Sources are commonly loaded from a JSON document (an editor host
// serializing a file's metadata alongside its content); Load and
// MarshalJSON handle that boundary using gjson/sjson rather than
// encoding/json, matching the rest of the corpus's preference for
// tolerant, allocation-light JSON libraries over the standard one.
package textsource
