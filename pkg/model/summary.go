package model

// DaySummary holds per-period team and headcount totals for a single date.
// Teams counts reservations; adults and children are summed separately so
// consumers can render either "adults" or "adults+children".
type DaySummary struct {
	Date           string `json:"date"`
	LunchTeams     int    `json:"lunch_teams"`
	LunchAdults    int    `json:"lunch_adults"`
	LunchChildren  int    `json:"lunch_children"`
	DinnerTeams    int    `json:"dinner_teams"`
	DinnerAdults   int    `json:"dinner_adults"`
	DinnerChildren int    `json:"dinner_children"`
}

func (s *DaySummary) LunchPeople() int {
	return s.LunchAdults + s.LunchChildren
}

func (s *DaySummary) DinnerPeople() int {
	return s.DinnerAdults + s.DinnerChildren
}

// DaySchedule is the chronological digest for a single date: active
// reservations sorted ascending by time and partitioned by meal period.
// The lunch/dinner boundary is where digest views draw their divider.
type DaySchedule struct {
	Date   string         `json:"date"`
	Lunch  []*Reservation `json:"lunch"`
	Dinner []*Reservation `json:"dinner"`
	Other  []*Reservation `json:"other"`
}
