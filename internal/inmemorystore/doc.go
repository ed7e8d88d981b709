// Package inmemorystore provides a thread-safe, in-memory implementation
// of the tilesetstore.Store interface. It lives as long as the process and
// backs the inspection server of a single run.
package inmemorystore
