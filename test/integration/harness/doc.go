// Package harness provides utilities for integration testing the cairn CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - CAIRN_HOME: Isolated per test (temp directory)
//   - CAIRN_*: Every other cairn variable from the outer environment is dropped
package harness
