// Package indent implements an indentation guesser: a small,
// self-contained heuristic that reads a document's lines through a
// narrow interface and picks an (insertSpaces, tabSize) pair.
package indent
