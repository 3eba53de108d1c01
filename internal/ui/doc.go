// Package ui provides terminal output formatting for matchLen.
//
// User-facing messages share one style:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
//
// All output goes to ui.Out (defaults to os.Stderr) so tests and the
// driver can redirect it.
//
// Example usage:
//
//	ui.Out = stderr
//	ui.SetColor(false)
//	ui.Fail("Error parsing arguments: %v", err)
//	ui.Info("Run %s for usage information", "matchLen --help")
package ui
