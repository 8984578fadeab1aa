// Package changeset implements the non-GUI kernel of an OpenStreetMap upload
// dialog: reconciling changeset metadata tags from the dataset, the selected
// open changeset, and input history; validating comment and source values
// against configurable term lists; managing the bounded input histories; and
// validating the upload strategy before an upload starts.
//
// The package is a library. The presentation layer owns all widgets and event
// wiring and calls into a Preparer at well-defined points (on focus loss, on
// submit); every computation here is pure, synchronous, and free of I/O
// beyond the pluggable preference store.
package changeset
