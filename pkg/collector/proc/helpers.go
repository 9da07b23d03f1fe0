package proc

import "os"

// readDir and readFile allow tests to stub the process pseudo-filesystem.
var (
	readDir  = os.ReadDir
	readFile = os.ReadFile
)
