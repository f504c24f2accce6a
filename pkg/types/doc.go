// Package types defines the property kinds, alignment enumerations, Target
// capability interfaces, store configuration, and standard error types shared
// by the quirk packages.
//
// See pkg/quirk for the preset and binding API built on top of them.
package types
