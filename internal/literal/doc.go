// Package literal decodes literal tokens into their canonical text and
// builds the surface spelling of synthesized string literals.
package literal
