// Package registry provides a generic, type-safe registry system
// for managing per-kind strategies and named factories. It supports
// automatic registration through init() functions.
package registry
