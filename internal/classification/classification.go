// Package classification normalizes raw storage record fields into the fixed
// display vocabulary: a health category, a disk icon tag and a display name.
// Every function in this package is total; unrecognized input resolves to a
// documented default, never to an error.
package classification
