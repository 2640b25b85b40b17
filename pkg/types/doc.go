// Package types defines the entity structs, status enumerations, filter
// objects, and standard errors for the Satchel storage layer.
// See docs/ARCHITECTURE.md § Main Interface.
package types
