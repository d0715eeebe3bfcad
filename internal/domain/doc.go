// Package domain contains the shared building blocks of the brewing
// calculations: the invalid-argument error raised by every textual entry
// point, the fail-fast parse step that produces it, and the fixed-decimal
// formatting used to present results. The calculation modules themselves
// live in the temperature, gravity and hops subpackages.
package domain
