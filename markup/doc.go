// Package markup parses the lightweight markup dialect used by the Hebrew
// research papers this module converts.
//
// The dialect is a small markdown subset: # ## ### headings, **bold** and
// *italic* emphasis, > blockquotes, numbered and bulleted list items,
// pipe-delimited tables, --- separators, [^N] footnote references, and
// [^N]: footnote definition lines. It is deliberately not CommonMark:
// nested styles, nested lists, and nested block structures are out of
// scope, and malformed input never fails - every line degrades to a plain
// paragraph at worst.
//
// Parsing is two sequential passes over the materialized line slice. The
// first pass collects footnote definitions from anywhere in the file, so
// forward references resolve. The second pass classifies lines into
// [model.Block] values with a cursor-based scan, consuming a variable run
// of lines for tables and exactly one line for everything else.
package markup
