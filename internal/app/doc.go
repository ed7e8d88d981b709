// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the lifecycle of a run: resolve tileset
// paths, load them concurrently, report, optionally publish, and optionally
// keep serving the results over HTTP. It is decoupled from any specific
// entrypoint like a CLI.
package app
