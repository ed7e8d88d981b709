// Package cli parses the wavetiles command line. It validates flags and
// positional tileset paths, maps them onto app.Config and reports bad input
// as an ExitError carrying the process exit code.
package cli
