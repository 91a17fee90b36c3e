package guard

import (
	"strings"

	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
)

// LoginRoute ruta de la pantalla de login.
const LoginRoute = "/"

// Screen pantalla dentro del área de un rol.
type Screen string

const (
	ScreenDashboard Screen = ""
	ScreenInventory Screen = "inv"
	ScreenOrders    Screen = "orders"
	ScreenRevenue   Screen = "revenue"
	ScreenProfile   Screen = "profile"
)

// HomeRoute prefijo del área de cada rol. Un rol fuera de la enumeración cae en el login.
func HomeRoute(role entity.Role) string {
	switch role {
	case entity.RoleSeller:
		return "/slr"
	case entity.RoleManufacturer:
		return "/mfr"
	case entity.RoleLogistics:
		return "/lgt"
	}
	return LoginRoute
}

// Route ruta absoluta de una pantalla del rol.
func Route(role entity.Role, screen Screen) string {
	home := HomeRoute(role)
	if screen == ScreenDashboard {
		return home
	}
	return home + "/" + string(screen)
}

// ShowChrome indica si el sidebar del rol se muestra en path: en todas sus rutas salvo el perfil.
func ShowChrome(path string, role entity.Role) bool {
	return path != Route(role, ScreenProfile)
}

// Chrome sidebar de la pantalla actual según la ruta que reporta el navegador; nil en el perfil.
func Chrome(nav Navigator, role entity.Role) []dto.NavItem {
	path := nav.CurrentPath()
	if !ShowChrome(path, role) {
		return nil
	}
	return SidebarItems(role, path)
}

// SidebarItems entradas del sidebar del rol, marcando la activa según currentPath.
func SidebarItems(role entity.Role, currentPath string) []dto.NavItem {
	var ordersDescription string
	switch role {
	case entity.RoleSeller:
		ordersDescription = "Source & received orders"
	case entity.RoleManufacturer:
		ordersDescription = "Track order status"
	case entity.RoleLogistics:
		ordersDescription = "Assigned deliveries"
	default:
		return nil
	}

	items := []dto.NavItem{
		{ID: "home", Label: "Home", Icon: "home", Path: Route(role, ScreenDashboard), Description: "Dashboard overview"},
		{ID: "inventory", Label: "Inventory", Icon: "cube", Path: Route(role, ScreenInventory), Description: "Manage stock levels"},
		{ID: "orders", Label: "Orders", Icon: "receipt", Path: Route(role, ScreenOrders), Description: ordersDescription},
		{ID: "revenue", Label: "Revenue", Icon: "cash", Path: Route(role, ScreenRevenue), Description: "View analytics"},
	}
	for i := range items {
		items[i].Active = isActive(items[i].Path, HomeRoute(role), currentPath)
	}
	return items
}

// La home solo está activa con coincidencia exacta; el resto por prefijo.
func isActive(itemPath, home, currentPath string) bool {
	if itemPath == home {
		return currentPath == home
	}
	return strings.HasPrefix(currentPath, itemPath)
}
