// Package swaptest provides mocks and helpers for testing extensions and
// the application stack: handlers, decorators, transactions,
// authenticators and deterministic keys.
package swaptest
