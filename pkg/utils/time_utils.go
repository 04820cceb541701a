package utils

import "time"

// Amsterdam time (CET/CEST); all user-facing timestamps render in it.
var nlLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Europe/Amsterdam"); err == nil {
		return loc
	}
	return time.FixedZone("CET", 1*3600)
}()

// Store epoch seconds in the database, render local on the way out.
func NowUnixSeconds() int64 { return time.Now().Unix() }

func FromUnixSecondsNL(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(nlLoc)
}

func FormatRFC3339NL(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
