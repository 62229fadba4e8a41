// Package models defines the client-side view of users, quests, workouts and
// the records the client persists locally.
package models

// ExpPerLevel is the size of one level band: level = floor(exp / 100).
// The server owns the canonical curve; this constant only matters for the
// offline fallback arithmetic.
const ExpPerLevel = 100

// User is the profile cached in the session store. The server is
// authoritative for Level; the client recomputes it locally only when the
// server cannot be reached.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Level int64  `json:"level"`
	Exp   int64  `json:"exp"`
}

// LevelForExp returns the level a given cumulative EXP total maps to.
func LevelForExp(exp int64) int64 {
	if exp <= 0 {
		return 0
	}
	return exp / ExpPerLevel
}
