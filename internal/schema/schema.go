// Package schema provides the principal schematics for all other packages. It
// defines the storage records as they are decoded from the management
// subsystem, together with the polymorphic health representation. The package
// serves as a foundational layer for record handling throughout the codebase.
package schema
