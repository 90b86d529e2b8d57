package aggregate

import "errors"

// ErrMissingDayTotal indicates a lookup for a day that never appeared in the
// aggregated input. The construction in Aggregate guarantees every seen day
// is present in all derived maps, so hitting this means a caller bug.
var ErrMissingDayTotal = errors.New("no aggregated total for day")
