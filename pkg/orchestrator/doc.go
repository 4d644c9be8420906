// Package orchestrator wires the contract pipeline (loader, parser, check)
// and the renderer registry behind one constructor for commands and servers.
package orchestrator
