package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAlphabetic(t *testing.T) {
	assert.True(t, IsAlphabetic("ramesh"))
	assert.True(t, IsAlphabetic("Ramesh"))
	assert.False(t, IsAlphabetic("ramesh123"))
	assert.False(t, IsAlphabetic("ramesh kumar"))
	assert.False(t, IsAlphabetic(""))
}

func TestIsPhoneNumber(t *testing.T) {
	assert.True(t, IsPhoneNumber("9876543210"))
	assert.False(t, IsPhoneNumber("987654321"))
	assert.False(t, IsPhoneNumber("98765432100"))
	assert.False(t, IsPhoneNumber("98765abcde"))
	assert.False(t, IsPhoneNumber(""))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("ramesh@krmu.edu.in"))
	assert.True(t, IsEmail("asha.verma@example.com"))
	assert.False(t, IsEmail("ramesh"))
	assert.False(t, IsEmail("ramesh@"))
	assert.False(t, IsEmail("ra mesh@krmu.edu.in"))
}

func TestHasDomainSuffix(t *testing.T) {
	assert.True(t, HasDomainSuffix("ramesh@krmu.edu.in", "@krmu.edu.in"))
	assert.False(t, HasDomainSuffix("ramesh@gmail.com", "@krmu.edu.in"))
	assert.False(t, HasDomainSuffix("ramesh@krmu.edu.in.evil.com", "@krmu.edu.in"))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("secret1234"))
	assert.False(t, IsStrongPassword("short1"))
	assert.False(t, IsStrongPassword("onlyletters"))
	assert.False(t, IsStrongPassword("1234567890"))
}
