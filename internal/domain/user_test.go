package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleTeacher, RoleStudent, RoleParent, RoleStaff} {
		assert.True(t, role.Valid(), string(role))
	}
	assert.False(t, Role("PRINCIPAL").Valid())
	assert.False(t, Role("").Valid())
}

func TestUserSerializationHidesPasswordHash(t *testing.T) {
	user := User{
		ID:           "u1",
		Name:         "Ada",
		Email:        "ada@school.example.com",
		PasswordHash: "$2a$12$secret",
		Role:         RoleTeacher,
		Status:       UserStatusActive,
		CreatedAt:    time.Now(),
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, string(raw), "secret")
	assert.Equal(t, "ada@school.example.com", fields["email"])
	assert.Equal(t, "TEACHER", fields["role"])
	assert.Contains(t, fields, "created_at")
	assert.NotContains(t, fields, "PasswordHash")
}
