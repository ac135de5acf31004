package calculation

import (
	"time"

	"github.com/rpgo/corpus-planner/pkg/dateutil"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// CurrentYear is the calendar year reported by the time provider. Callers
// use it when no explicit analysis year is given.
func CurrentYear() int { return dateutil.CurrentYear(nowFunc()) }
