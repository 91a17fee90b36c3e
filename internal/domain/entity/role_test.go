package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/battery-supply-chain/internal/domain"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
)

func TestParseRole(t *testing.T) {
	cases := map[string]entity.Role{
		"seller":         entity.RoleSeller,
		" Manufacturer ": entity.RoleManufacturer,
		"LOGISTICS":      entity.RoleLogistics,
	}
	for in, want := range cases {
		got, err := entity.ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := entity.ParseRole("admin")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestUser_WellFormed(t *testing.T) {
	u := entity.User{ID: "1", Username: "seller1", Role: entity.RoleSeller}
	assert.True(t, u.WellFormed())

	u.Role = "admin"
	assert.False(t, u.WellFormed(), "un rol fuera de la enumeración no es sesión válida")

	assert.False(t, entity.User{Role: entity.RoleSeller}.WellFormed())
}

func TestUser_JSONOmiteOpcionales(t *testing.T) {
	b, err := json.Marshal(entity.User{ID: "9", Username: "x", Role: entity.RoleLogistics})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "company")
	assert.NotContains(t, string(b), "phone")
	assert.Contains(t, string(b), `"profilePicture":""`)
}
