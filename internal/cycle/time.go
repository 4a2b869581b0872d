package cycle

import "time"

// timeNow is a package-level variable for testability.
// Tests can replace this to control what "today" means.
var timeNow = time.Now
