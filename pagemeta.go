// Package pagemeta extracts structured metadata (site identity, topic tags,
// postal address, FAQ pairs, tabular data, structured-data objects, resolved
// links) from an already-fetched HTML document, using only heuristics over
// the DOM tree and the page URL. No site-specific rules.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/).
package pagemeta
