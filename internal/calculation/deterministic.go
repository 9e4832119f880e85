package calculation

import "time"

// nowFunc stamps Estimate.GeneratedAt.
var nowFunc = time.Now

// SetNowFunc replaces the clock used for GeneratedAt. Tests pin it to get
// reproducible reports.
func SetNowFunc(f func() time.Time) { nowFunc = f }
