package domain

import "time"

// DateLayout is the calendar-date layout used when birth dates are stored as text.
const DateLayout = "2006-01-02"

// Person is a stored person record. Identity is ID; the repository owns uniqueness.
type Person struct {
	ID        int
	First     string
	Last      string
	BirthDate time.Time
}

// NewPerson builds a Person with the birth date truncated to a UTC calendar day.
func NewPerson(id int, first, last string, year int, month time.Month, day int) Person {
	return Person{
		ID:        id,
		First:     first,
		Last:      last,
		BirthDate: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

// Assignment pairs an astronaut with the craft they are currently aboard.
type Assignment struct {
	Name  string `json:"name"`
	Craft string `json:"craft"`
}

// AstroResponse is the open-notify "people in space" payload.
type AstroResponse struct {
	Message string       `json:"message"`
	Number  int          `json:"number"`
	People  []Assignment `json:"people"`
}

// Bio is a plain-text encyclopedia extract for a single title.
type Bio struct {
	Title   string
	Extract string
}
