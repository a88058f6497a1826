// Package index parses tag-delimited index files and groups their entries
// into a tree of nested nodes.
//
// # Input format
//
// Records are terminated by the literal token "@end". Inside a record, fields
// are separated by "@". The first field is the label; the second field may be
// a link ("%path/relative/to/docroot.html"), a cross reference ("^Other label")
// or simply the next nesting level:
//
//	Navier Stokes@%navier_stokes/index.html@end
//	Navier Stokes@Driven cavity@%navier_stokes/driven_cavity/index.html@end
//	NS@^Navier Stokes@end
//
// # Pipeline
//
//   - Parse splits the text into Entries, prepends the upper-cased first
//     letter of each label and sorts the result.
//   - KeyOf derives the label, link and "see ..." suffix of an Entry.
//   - Build groups the sorted Index recursively into Nodes, computing anchors
//     and rejecting labels that claim two different link targets.
//   - Collect summarises a built tree.
package index
