/*
Package status manages payload file I/O and per-file result tracking for
remaprc.

🎯 Purpose:
- Owns reading and (atomic) writing of payload files
- Tracks each file's outcome (rewritten, unchanged, skipped, failed)
- Provides user-friendly status reporting

🔄 Flow:
1. Receives transformed content from the operation layer
2. Writes it through a temp file and rename
3. Records per-file status and replacement counts
4. Reports outcomes in a user-friendly format

🤝 Interfaces:
- FileFormatter: formats status messages
- UserLogger: pterm-based console feedback
*/
package status
