package guard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/battery-supply-chain/internal/application/guard"
	"github.com/jhoicas/battery-supply-chain/internal/application/session"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
)

// fakeNavigator registra los reemplazos solicitados.
type fakeNavigator struct {
	path     string
	replaced []string
	err      error
}

func (f *fakeNavigator) ReplaceWithLogin() error {
	f.replaced = append(f.replaced, guard.LoginRoute)
	return f.err
}

func (f *fakeNavigator) ReplaceWithHome(role entity.Role) error {
	f.replaced = append(f.replaced, guard.HomeRoute(role))
	return f.err
}

func (f *fakeNavigator) CurrentPath() string { return f.path }

func authenticated(role entity.Role) session.Snapshot {
	return session.Snapshot{
		Status: session.StatusAuthenticated,
		User:   &entity.User{ID: "1", Username: role.String() + "1", Role: role},
	}
}

var (
	loading      = session.Snapshot{Status: session.StatusUninitialized}
	anonymous    = session.Snapshot{Status: session.StatusUnauthenticated}
	seller       = authenticated(entity.RoleSeller)
	manufacturer = authenticated(entity.RoleManufacturer)
)

func TestDecide(t *testing.T) {
	assert.Equal(t, guard.DecisionPending, guard.Decide(loading, entity.RoleSeller))
	assert.Equal(t, guard.DecisionRedirect, guard.Decide(anonymous, entity.RoleSeller))
	assert.Equal(t, guard.DecisionRedirect, guard.Decide(manufacturer, entity.RoleSeller))
	assert.Equal(t, guard.DecisionRender, guard.Decide(seller, entity.RoleSeller))
}

func TestEnforce_SellerSinSesionOManufacturer_Redirige(t *testing.T) {
	for name, snap := range map[string]session.Snapshot{"sin sesión": anonymous, "manufacturer": manufacturer} {
		t.Run(name, func(t *testing.T) {
			nav := &fakeNavigator{path: "/slr"}
			d, err := guard.Enforce(nav, snap, entity.RoleSeller)
			require.NoError(t, err)
			assert.Equal(t, guard.DecisionRedirect, d)
			assert.Equal(t, []string{"/"}, nav.replaced, "exactamente un reemplazo hacia el login")
		})
	}
}

func TestEnforce_SellerConSesionSeller_Renderiza(t *testing.T) {
	nav := &fakeNavigator{path: "/slr"}
	d, err := guard.Enforce(nav, seller, entity.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, guard.DecisionRender, d)
	assert.Empty(t, nav.replaced)
}

// Mientras se restaura no se redirige: se expulsaría a un usuario legítimo.
func TestEnforce_CargandoNoRedirige(t *testing.T) {
	nav := &fakeNavigator{path: "/mfr"}
	d, err := guard.Enforce(nav, loading, entity.RoleManufacturer)
	require.NoError(t, err)
	assert.Equal(t, guard.DecisionPending, d)
	assert.Empty(t, nav.replaced)
}

func TestEnforce_PropagaErrorDelNavegador(t *testing.T) {
	nav := &fakeNavigator{err: errors.New("router caído")}
	_, err := guard.Enforce(nav, anonymous, entity.RoleLogistics)
	assert.Error(t, err)
}

func TestEnforceLogin(t *testing.T) {
	nav := &fakeNavigator{path: "/"}
	d, err := guard.EnforceLogin(nav, manufacturer)
	require.NoError(t, err)
	assert.Equal(t, guard.DecisionRedirect, d)
	assert.Equal(t, []string{"/mfr"}, nav.replaced)

	nav = &fakeNavigator{path: "/"}
	d, _ = guard.EnforceLogin(nav, anonymous)
	assert.Equal(t, guard.DecisionRender, d)
	assert.Empty(t, nav.replaced)

	d, _ = guard.EnforceLogin(nav, loading)
	assert.Equal(t, guard.DecisionPending, d)
}

func TestHomeRouteYRoute(t *testing.T) {
	assert.Equal(t, "/slr", guard.HomeRoute(entity.RoleSeller))
	assert.Equal(t, "/mfr", guard.HomeRoute(entity.RoleManufacturer))
	assert.Equal(t, "/lgt", guard.HomeRoute(entity.RoleLogistics))
	assert.Equal(t, guard.LoginRoute, guard.HomeRoute(entity.Role("admin")))

	assert.Equal(t, "/slr/inv", guard.Route(entity.RoleSeller, guard.ScreenInventory))
	assert.Equal(t, "/lgt", guard.Route(entity.RoleLogistics, guard.ScreenDashboard))
}

func TestShowChrome(t *testing.T) {
	assert.True(t, guard.ShowChrome("/slr", entity.RoleSeller))
	assert.True(t, guard.ShowChrome("/slr/orders", entity.RoleSeller))
	assert.False(t, guard.ShowChrome("/slr/profile", entity.RoleSeller))
	assert.False(t, guard.ShowChrome("/mfr/profile", entity.RoleManufacturer))
}

func TestSidebarItems_Activo(t *testing.T) {
	items := guard.SidebarItems(entity.RoleManufacturer, "/mfr/inv")
	require.Len(t, items, 4)

	active := map[string]bool{}
	for _, it := range items {
		active[it.ID] = it.Active
	}
	assert.False(t, active["home"], "la home solo se activa con coincidencia exacta")
	assert.True(t, active["inventory"])
	assert.False(t, active["orders"])

	home := guard.SidebarItems(entity.RoleSeller, "/slr")
	assert.True(t, home[0].Active)
	assert.Nil(t, guard.SidebarItems(entity.Role("admin"), "/"))
}

func TestChrome_LeeLaRutaDelNavegador(t *testing.T) {
	nav := &fakeNavigator{path: "/lgt/orders"}
	items := guard.Chrome(nav, entity.RoleLogistics)
	require.Len(t, items, 4)
	assert.True(t, items[2].Active)

	nav.path = "/lgt/profile"
	assert.Nil(t, guard.Chrome(nav, entity.RoleLogistics))
	assert.Empty(t, nav.replaced)
}
