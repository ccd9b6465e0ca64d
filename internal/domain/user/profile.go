package user

import "strings"

const (
	minAge = 18
	maxAge = 150
)

// Profile groups first name, last name, and age. Validation is atomic: either
// all three fields are legal or the prior state is retained.
type Profile struct {
	firstName string
	lastName  string
	age       int
}

// NewProfile trims names, then validates. Name checks run before age checks so
// error selection is deterministic.
func NewProfile(firstName, lastName string, age int) (Profile, error) {
	firstName, lastName, err := validateProfile(firstName, lastName, age)
	if err != nil {
		return Profile{}, err
	}
	return Profile{firstName: firstName, lastName: lastName, age: age}, nil
}

func validateProfile(firstName, lastName string, age int) (string, string, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if firstName == "" {
		return "", "", ErrEmptyFirstName
	}
	if lastName == "" {
		return "", "", ErrEmptyLastName
	}
	if age < minAge {
		return "", "", ErrUserTooYoung
	}
	if age > maxAge {
		return "", "", ErrInvalidAge
	}
	return firstName, lastName, nil
}

func (p Profile) FirstName() string { return p.firstName }
func (p Profile) LastName() string  { return p.lastName }
func (p Profile) Age() int          { return p.age }

func (p Profile) FullName() string { return p.firstName + " " + p.lastName }

// Update re-validates all fields before committing; on error the receiver is
// left untouched.
func (p *Profile) Update(firstName, lastName string, age int) error {
	firstName, lastName, err := validateProfile(firstName, lastName, age)
	if err != nil {
		return err
	}
	p.firstName = firstName
	p.lastName = lastName
	p.age = age
	return nil
}
