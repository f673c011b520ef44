// Package output provides user-facing output and error handling for the blog-tools CLI.
//
// # Printer
//
// Every command writes through a Printer. Human output is a series of
// glyph-prefixed lines, matching the marks the list view uses for status:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, isTTY)
//
//	printer.Success("Created list: %s", name) // [✓] Created list: ideas
//	printer.Info("Cancelled deletion.")        // [i] Cancelled deletion.
//	printer.Warn("Post already marked")        // [!] Post already marked
//	printer.Error(err)                         // [!] List not found
//
// In JSON mode the line helpers are silent and the command emits one
// document with WriteJSON. Errors replace that document as
// {"error": "...", "code": N}; warnings go to the error writer as
// {"warning": "..."}.
//
// # Styling
//
// Glyphs are coloured with lipgloss when the output is a terminal and
// --color is not "never".
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success, including a declined confirmation
//	output.ExitUserError   // 1: List or post not found, missing flags
//	output.ExitSystemError // 2: Lists file could not be written, other I/O
//	output.ExitConflict    // 3: Generated post already exists
package output
