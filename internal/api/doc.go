// Package api implements the HTTP handlers for the advertisement board:
// user and advertisement CRUD with validation, header authentication and
// uniform response envelopes.
package api
