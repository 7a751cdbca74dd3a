package timezone

import (
	"time"
	_ "time/tzdata"
)

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/Zurich")
	if err != nil {
		panic(err)
	}
}

// vote dates are published as swiss calendar days, so "is this vote
// in the future" has to be answered in Zurich time regardless of
// where the scraper happens to run
func Now() time.Time {
	return time.Now().In(Location)
}

// returns midnight of the given calendar day in Zurich time
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, Location)
}
