package auth

import (
	"errors"

	"food-marketplace-api/models"
)

// PermissionWildcard grants every permission; only ADMIN carries it.
const PermissionWildcard = "admin.all"

// Restaurateur permissions
const (
	PermRestaurantProfileEdit   = "restaurant.profile.edit"
	PermRestaurantProductsView  = "restaurant.products.view"
	PermRestaurantProductsEdit  = "restaurant.products.edit"
	PermRestaurantCategoryView  = "restaurant.categories.view"
	PermRestaurantCategoryEdit  = "restaurant.categories.edit"
	PermRestaurantOrdersView    = "restaurant.orders.view"
	PermRestaurantOrdersEdit    = "restaurant.orders.edit"
	PermRestaurantStatsView     = "restaurant.stats.view"
)

// ErrUnknownRole is returned for role values outside the closed enum
var ErrUnknownRole = errors.New("unknown role")

// rolePermissions is the authoritative role → permission table.
// CUSTOMER intentionally maps to an empty set.
var rolePermissions = map[models.UserRole][]string{
	models.RoleAdmin: {PermissionWildcard},
	models.RoleRestaurator: {
		PermRestaurantProfileEdit,
		PermRestaurantProductsView,
		PermRestaurantProductsEdit,
		PermRestaurantCategoryView,
		PermRestaurantCategoryEdit,
		PermRestaurantOrdersView,
		PermRestaurantOrdersEdit,
		PermRestaurantStatsView,
	},
	models.RoleCustomer: {},
}

// PermissionsFor returns the static permission set for a role.
func PermissionsFor(role models.UserRole) []string {
	perms := rolePermissions[role]
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// ParseRole validates a raw role string against the closed enum.
func ParseRole(s string) (models.UserRole, error) {
	switch models.UserRole(s) {
	case models.RoleAdmin:
		return models.RoleAdmin, nil
	case models.RoleRestaurator:
		return models.RoleRestaurator, nil
	case models.RoleCustomer:
		return models.RoleCustomer, nil
	}
	return "", ErrUnknownRole
}

// HasPermission reports whether the identity may perform the named action.
// ADMIN always passes, RESTAURATOR passes on exact membership in the
// token's permission list, CUSTOMER never passes.
func HasPermission(c *Claims, permission string) bool {
	switch c.Role {
	case models.RoleAdmin:
		return true
	case models.RoleRestaurator:
		for _, p := range c.Permissions {
			if p == permission {
				return true
			}
		}
	}
	return false
}

// CanAccessRestaurant reports whether the identity may manage the given
// restaurant. RESTAURATOR is scoped to their own restaurant only.
func CanAccessRestaurant(c *Claims, restaurantID uint) bool {
	switch c.Role {
	case models.RoleAdmin:
		return true
	case models.RoleRestaurator:
		return c.RestaurantID != nil && *c.RestaurantID == restaurantID
	}
	return false
}
