// Package widget defines the closed set of typed component nodes a rendered
// widget is built from, their JSON wire form (a "type" discriminator plus
// attributes with unset fields omitted), and the structural diff that turns
// two consecutive render snapshots into a minimal sequence of patch events.
//
// Components form a closed union: concrete types implement the unexported
// isComponent marker, and the subset legal at tree roots additionally
// implements isRoot. The tree is plain data; interpretation (layout, theming,
// interaction) belongs to the presentation layer consuming the JSON.
package widget
