// Package core defines the shared language of the LeapGrid system.
//
// This package contains:
//   - Result metadata (attribute and measure descriptors, attribute element headers)
//   - Column locators (attribute and measure locators) used to address columns
//     independently of a concrete table instance
//   - Sort items that reference columns through the same locators
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
