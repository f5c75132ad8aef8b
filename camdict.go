// Package camdict looks up words in the Cambridge English-Chinese (Traditional)
// dictionary and extracts structured entries from the returned pages.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, lru/).
package camdict
