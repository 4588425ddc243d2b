// Package mocks provides hand-written test doubles for the store interfaces.
// Each mock offers function fields for per-test behavior overrides, backed by
// an in-memory default implementation.
package mocks
