package model

import "time"

// DoctorID uniquely identifies a doctor
type DoctorID string

// Doctor is a clinic doctor with a login account
type Doctor struct {
	ID DoctorID
	Person
	Account   Account
	CreatedAt time.Time
}

// IsSameDoctor is the weaker identity check: same name and same credential.
func (d *Doctor) IsSameDoctor(other *Doctor) bool {
	if other == d {
		return true
	}
	return other != nil &&
		other.Person.Name == d.Person.Name &&
		other.Account.Credential.Equal(d.Account.Credential)
}

// Equal compares identity and data fields
func (d *Doctor) Equal(other *Doctor) bool {
	if other == d {
		return true
	}
	return other != nil &&
		other.ID == d.ID &&
		other.Person == d.Person &&
		other.Account.Username == d.Account.Username &&
		other.Account.Credential.Equal(d.Account.Credential)
}
