package domain

// BaselineSeconds is the normal working time per day: 7 hours. Components
// take the baseline as a parameter; this is only the default.
const BaselineSeconds int64 = 7 * 60 * 60

// TimeEntry is one recorded span of worked time, already resolved to the
// calendar day it started on. Produced by the entry source; never mutated.
type TimeEntry struct {
	Day      Day
	Duration int64 // seconds, non-negative
}
