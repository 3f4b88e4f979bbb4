// Package mocks provides hand-written in-memory implementations of the store
// interfaces for handler and middleware tests.
package mocks
