// Package session holds the client's authenticated identity, reconciled
// with the durable local cache at startup and written through on every
// change.
//
// Lifecycle: Uninitialized → Initializing → {Authenticated, Anonymous},
// then Authenticated ⇄ Anonymous via login/logout. All transitions are
// serialized under one mutex; overlapping calls cannot corrupt state, the
// last durable write wins.
package session
