package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicio/clinicio/internal/credential"
)

func newDoctor(t *testing.T, id, name, password string) *Doctor {
	t.Helper()
	c, err := credential.New(password, credential.SHA256Hasher{})
	require.NoError(t, err)
	return &Doctor{
		ID:      DoctorID(id),
		Person:  Person{Name: name},
		Account: Account{Username: id, Credential: c},
	}
}

func TestIsSameDoctor(t *testing.T) {
	alice := newDoctor(t, "d1", "Alice", "peter12")

	assert.True(t, alice.IsSameDoctor(alice))
	assert.True(t, alice.IsSameDoctor(newDoctor(t, "d2", "Alice", "peter12")))
	assert.False(t, alice.IsSameDoctor(newDoctor(t, "d1", "Alice", "peter13")))
	assert.False(t, alice.IsSameDoctor(newDoctor(t, "d1", "Bob", "peter12")))
	assert.False(t, alice.IsSameDoctor(nil))
}

func TestDoctorEqual(t *testing.T) {
	alice := newDoctor(t, "d1", "Alice", "peter12")

	assert.True(t, alice.Equal(newDoctor(t, "d1", "Alice", "peter12")))
	assert.False(t, alice.Equal(newDoctor(t, "d2", "Alice", "peter12")))
	assert.False(t, alice.Equal(nil))
}

func TestWithCredentialReplacesCopy(t *testing.T) {
	alice := newDoctor(t, "d1", "Alice", "peter12")
	replacement, _ := credential.New("peter13", credential.SHA256Hasher{})

	updated := alice.Account.WithCredential(replacement, alice.CreatedAt)

	assert.True(t, updated.Credential.Equal(replacement))
	assert.False(t, alice.Account.Credential.Equal(replacement))
}

func TestPersonValidate(t *testing.T) {
	assert.NoError(t, Person{Name: "Alice"}.Validate())
	assert.ErrorIs(t, Person{Name: "  "}.Validate(), ErrInvalidRecord)
}

func TestRecordsPromotePersonFields(t *testing.T) {
	d := Doctor{Person: Person{Name: "Lisa Cuddy", Phone: "555-0199", Email: "cuddy@ppth.org", Address: "Princeton"}}
	p := Patient{Person: Person{Name: "Rebecca Adler"}}

	assert.Equal(t, "Lisa Cuddy", d.Name)
	assert.Equal(t, "555-0199", d.Phone)
	assert.Equal(t, "cuddy@ppth.org", d.Email)
	assert.Equal(t, "Princeton", d.Address)
	assert.Equal(t, "Rebecca Adler", p.Name)
	assert.NoError(t, p.Validate())
}
