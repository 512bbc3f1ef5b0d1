// Package progression handles item level upgrades and farming item slot
// growth, including the time-lock cost curve.
package progression

// TimeToReach returns the cumulative seconds of upgrade time from level 1
// to the given level. Each step adds the flat increment; every fifth level
// instead charges five times the accumulated flat time, which is where the
// curve jumps.
func TimeToReach(level uint8, increment int64) int64 {
	var total, tracker int64
	for i := 2; i <= int(level); i++ {
		if i%5 == 0 {
			total += tracker * 5
		} else {
			tracker += increment
			total += increment
		}
	}
	return total
}

// UpgradeTime returns the seconds an upgrade from current to target takes.
func UpgradeTime(current, target uint8, increment int64) int64 {
	return TimeToReach(target, increment) - TimeToReach(current, increment)
}
