package credential

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidRejects(t *testing.T) {
	cases := map[string]string{
		"empty string":        "",
		"spaces only":         " ",
		"symbol only":         "^",
		"contains symbol":     "peter*",
		"too short":           "pete",
		"contains space":      "Capital Tan",
		"too long":            "David Roger Jackson Ray Jr 2nd",
		"thirteen characters": "1234567890123",
		"non-ascii letter":    "pässwort1",
		"leading space":       " joseph",
		"tab inside":          "jos\teph",
		"five characters":     "abcde",
		"trailing newline":    "joseph\n",
		"underscore":          "peter_12",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			assert.False(t, IsValid(raw), "%q should be rejected", raw)
		})
	}
}

func TestIsValidAccepts(t *testing.T) {
	cases := map[string]string{
		"six letters":        "joseph",
		"lower case only":    "peterjack",
		"digits only":        "81920543",
		"twelve digits":      "123456789012",
		"mixed case letters": "CapitalTan",
		"alphanumeric":       "Capital123",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, IsValid(raw), "%q should be accepted", raw)
		})
	}
}

func TestNewPlaintextRejectsInvalid(t *testing.T) {
	_, err := NewPlaintext("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPlaintextStringIsRedacted(t *testing.T) {
	p, err := NewPlaintext("peter12")
	require.NoError(t, err)
	assert.NotContains(t, p.String(), "peter12")
}

func TestParseDigestRejectsBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n"} {
		_, err := ParseDigest(s)
		assert.ErrorIs(t, err, ErrInvalidFormat)
	}
}

func TestNewStoresDigestNotPlaintext(t *testing.T) {
	c, err := New("peter12", SHA256Hasher{})
	require.NoError(t, err)

	assert.NotEqual(t, "peter12", c.StoredRepresentation())
	assert.Equal(t, Hash("peter12").String(), c.StoredRepresentation())
}

func TestNewRejectsInvalidPlaintext(t *testing.T) {
	_, err := New("", SHA256Hasher{})
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = New("peter*", SHA256Hasher{})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestFromDigestSkipsPlaintextRules(t *testing.T) {
	// digests may contain characters plaintext may not
	c, err := FromDigest("$2a$10$abc/def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$abc/def.ghi", c.StoredRepresentation())
}

func TestFromDigestRejectsBlank(t *testing.T) {
	_, err := FromDigest("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = FromDigest("   ")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestEqualComparesStoredRepresentation(t *testing.T) {
	a, _ := New("peter12", SHA256Hasher{})
	b, _ := FromDigest(Hash("peter12").String())
	c, _ := New("peter13", SHA256Hasher{})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestCredentialMatches(t *testing.T) {
	c, err := New("peter12", SHA256Hasher{})
	require.NoError(t, err)

	ok, err := c.Matches("peter12")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Matches("peter13")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestZeroCredentialDoesNotMatch(t *testing.T) {
	var c Credential
	_, err := c.Matches("peter12")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestStringHidesDigest(t *testing.T) {
	c, _ := New("peter12", SHA256Hasher{})
	assert.NotContains(t, c.String(), c.StoredRepresentation())
}

func TestJSONPersistsOnlyDigest(t *testing.T) {
	type record struct {
		Credential Credential `json:"credential"`
	}
	c, _ := New("peter12", SHA256Hasher{})

	data, err := json.Marshal(record{Credential: c})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "peter12")
	assert.Contains(t, string(data), c.StoredRepresentation())

	var loaded record
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.True(t, c.Equal(loaded.Credential))
}

func TestJSONRejectsBlankDigest(t *testing.T) {
	var loaded struct {
		Credential Credential `json:"credential"`
	}
	err := json.Unmarshal([]byte(`{"credential":" "}`), &loaded)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestMarshalZeroCredentialFails(t *testing.T) {
	_, err := json.Marshal(struct {
		Credential Credential `json:"credential"`
	}{})
	assert.Error(t, err)
}
