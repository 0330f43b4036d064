package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStudentID(t *testing.T) {
	t.Run("first ID starts at one", func(t *testing.T) {
		id, err := NextStudentID("")
		require.NoError(t, err)
		assert.Equal(t, "KRMU0000001", id)
	})

	t.Run("increments the numeric suffix", func(t *testing.T) {
		id, err := NextStudentID("KRMU0000001")
		require.NoError(t, err)
		assert.Equal(t, "KRMU0000002", id)
	})

	t.Run("keeps seven digit zero padding", func(t *testing.T) {
		id, err := NextStudentID("KRMU0000041")
		require.NoError(t, err)
		assert.Equal(t, "KRMU0000042", id)
	})

	t.Run("sentinel counts as no assigned ID", func(t *testing.T) {
		id, err := NextStudentID(TempStudentID)
		require.NoError(t, err)
		assert.Equal(t, "KRMU0000001", id)
	})

	t.Run("rejects malformed IDs", func(t *testing.T) {
		_, err := NextStudentID("KRMUxyz")
		assert.Error(t, err)
	})
}

func TestStudentFullName(t *testing.T) {
	s := &Student{FirstName: "Asha", LastName: "Verma"}
	assert.Equal(t, "Asha Verma", s.FullName())

	s.LastName = ""
	assert.Equal(t, "Asha", s.FullName())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, RoleCounsellor.IsValid())
	assert.True(t, RoleTeacher.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("student").IsValid())

	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusPass.IsValid())
	assert.True(t, StatusFail.IsValid())
	assert.False(t, Status("Interviewed").IsValid())

	assert.True(t, GenderFemale.IsValid())
	assert.False(t, Gender("unknown").IsValid())

	assert.True(t, EmailStatusAdded.IsValid())
	assert.False(t, EmailStatus("Sent").IsValid())
}
