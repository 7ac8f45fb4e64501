package model

// Fixed catalogs of the restaurant's bookable resources and staff roster.
// These are configuration data, not computed values; pickers on the client
// render exactly these sets.

var Rooms = []string{"B1", "B2", "A1"}

var Seats = []string{
	"T1", "T2", "T3", "T4", "T5", "T6", "T7",
	"T8", "T9", "T10", "T11", "T12", "T13",
}

var Confirmers = []string{
	"김서울",
	"이한강",
	"박남산",
	"정동해",
	"최북악",
	"강인왕",
	"윤설악",
	"임지리",
	"송한라",
	"조백두",
}

func IsRoom(id string) bool {
	return contains(Rooms, id)
}

func IsSeat(id string) bool {
	return contains(Seats, id)
}

func IsConfirmer(name string) bool {
	return contains(Confirmers, name)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
