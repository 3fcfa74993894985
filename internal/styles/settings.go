package styles

import (
	"strings"

	glinterrors "github.com/glintlabs/glint/pkg/errors"
)

// Settings is the construction surface for styles. Keys are routed by name:
//
//   - an exact role name ("button") assigns a whole-layer block, whose value
//     must be a nested attribute map;
//   - a bare attribute name ("font", "border_width") applies to the base role;
//   - a compound key ("button_fg", "scroll.bar_width") is split on "_" or "."
//     into a (role, attribute) pair, with longest-prefix matching against the
//     compound role names (table_header, table_alt) whose own names contain
//     an underscore.
//
// A key that cannot be routed fails the construction call.
type Settings map[string]any

// configure routes settings onto this style's layers. Whole-layer blocks are
// applied before individual compound keys, matching declaration intent when
// both target the same role.
func (s *Style) configure(settings Settings) error {
	type roleAttrs struct {
		role  Role
		attrs map[string]any
	}
	var wholeLayers []roleAttrs
	perRole := make(map[Role]map[string]any)

	addAttr := func(role Role, attr string, value any) {
		attrs := perRole[role]
		if attrs == nil {
			attrs = make(map[string]any)
			perRole[role] = attrs
		}
		attrs[attr] = value
	}

	for key, value := range settings {
		switch {
		case isRoleName(key):
			block, err := layerBlock(s.name, key, value)
			if err != nil {
				return err
			}
			wholeLayers = append(wholeLayers, roleAttrs{role: Role(key), attrs: block})
		case isAttrName(key):
			addAttr(RoleBase, key, value)
		default:
			role, attr, ok := splitSettingKey(key)
			if !ok {
				return glinterrors.NewStyleOptionError(s.name, key, "no matching role or attribute")
			}
			addAttr(role, attr, value)
		}
	}

	for _, wl := range wholeLayers {
		if err := s.layerFor(wl.role).apply(wl.attrs); err != nil {
			return err
		}
	}
	for role, attrs := range perRole {
		if err := s.layerFor(role).apply(attrs); err != nil {
			return err
		}
	}
	return nil
}

func layerBlock(styleName, role string, value any) (map[string]any, error) {
	switch block := value.(type) {
	case Settings:
		return block, nil
	case map[string]any:
		return block, nil
	default:
		return nil, glinterrors.NewStyleOptionError(
			styleName, role, "whole-layer value must be an attribute map")
	}
}

// splitSettingKey splits a compound key into a known (role, attribute) pair.
// Simple roles are matched by cutting at the first "_" or "."; compound role
// names are tried afterwards by longest prefix, so "table_header_fg" routes
// to (table_header, fg) rather than failing on (table, header_fg).
func splitSettingKey(key string) (Role, string, bool) {
	for _, delim := range []string{"_", "."} {
		if role, attr, found := strings.Cut(key, delim); found {
			if isRoleName(role) && isAttrName(attr) {
				return Role(role), attr, true
			}
		}
	}
	for _, name := range compoundRoleNames {
		if len(key) > len(name)+1 && strings.HasPrefix(key, name) {
			if delim := key[len(name)]; delim == '_' || delim == '.' {
				if attr := key[len(name)+1:]; isAttrName(attr) {
					return Role(name), attr, true
				}
			}
		}
	}
	return "", "", false
}
