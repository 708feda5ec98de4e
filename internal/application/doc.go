// Package application wires configuration loading and logging together and
// renders the resolved settings, keeping the main package focused on CLI
// parsing and orchestration.
package application
