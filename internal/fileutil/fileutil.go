// Package fileutil holds file mode constants shared by the CLI.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for path item documents
// written by the CLI (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600
