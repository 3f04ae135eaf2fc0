// Package children manages the parent's child profiles and the active child
// that other commands default to.
package children
