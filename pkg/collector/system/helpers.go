package system

import "os"

// readFile allows tests to stub the meminfo and loadavg sources.
var readFile = os.ReadFile
