// Package miner extracts a normalized metadata record (title, author,
// keywords, description and leading image) from an arbitrary HTML page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, bluemonday/).
package miner
