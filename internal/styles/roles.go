package styles

import "sort"

// Role names the part of the UI a layer styles. The role set is fixed at the
// schema level; each role may declare a fallback parent role consulted only
// after a lookup exhausts the full style ancestor chain for the role itself.
type Role string

const (
	RoleBase        Role = "base"
	RoleArrows      Role = "arrows" // arrows on forms, such as combo boxes
	RoleButton      Role = "button"
	RoleCheckbox    Role = "checkbox"
	RoleCombo       Role = "combo" // combo box (dropdown) input
	RoleFrame       Role = "frame"
	RoleImage       Role = "image"
	RoleInput       Role = "input"
	RoleInsert      Role = "insert"
	RoleLink        Role = "link" // hyperlinks
	RoleListbox     Role = "listbox"
	RoleMenu        Role = "menu"
	RoleProgress    Role = "progress" // progress bars
	RoleRadio       Role = "radio"
	RoleScroll      Role = "scroll"
	RoleSelected    Role = "selected" // used by choices, tables, and scroll regions
	RoleSeparator   Role = "separator"
	RoleSlider      Role = "slider"
	RoleTable       Role = "table"
	RoleTableAlt    Role = "table_alt"    // alternate / even rows in tables
	RoleTableHeader Role = "table_header" // table headers
	RoleText        Role = "text"
	RoleTooltip     Role = "tooltip"
)

// roleParents declares each role's fallback parent role. Roles absent from
// the map (base, arrows, insert, scroll) have no fallback.
var roleParents = map[Role]Role{
	RoleButton:      RoleBase,
	RoleCheckbox:    RoleBase,
	RoleCombo:       RoleText,
	RoleFrame:       RoleBase,
	RoleImage:       RoleBase,
	RoleInput:       RoleText,
	RoleLink:        RoleText,
	RoleListbox:     RoleText,
	RoleMenu:        RoleBase,
	RoleProgress:    RoleBase,
	RoleRadio:       RoleBase,
	RoleSelected:    RoleBase,
	RoleSeparator:   RoleBase,
	RoleSlider:      RoleBase,
	RoleTable:       RoleBase,
	RoleTableAlt:    RoleTable,
	RoleTableHeader: RoleTable,
	RoleText:        RoleBase,
	RoleTooltip:     RoleBase,
}

var allRoles = []Role{
	RoleBase, RoleArrows, RoleButton, RoleCheckbox, RoleCombo, RoleFrame,
	RoleImage, RoleInput, RoleInsert, RoleLink, RoleListbox, RoleMenu,
	RoleProgress, RoleRadio, RoleScroll, RoleSelected, RoleSeparator,
	RoleSlider, RoleTable, RoleTableAlt, RoleTableHeader, RoleText, RoleTooltip,
}

var roleSet = func() map[Role]struct{} {
	set := make(map[Role]struct{}, len(allRoles))
	for _, r := range allRoles {
		set[r] = struct{}{}
	}
	return set
}()

// compoundRoleNames lists role names that themselves contain an underscore,
// longest first, for the setting-key splitter's longest-prefix match.
var compoundRoleNames = func() []string {
	var names []string
	for _, r := range allRoles {
		for _, c := range string(r) {
			if c == '_' {
				names = append(names, string(r))
				break
			}
		}
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	return names
}()

// Roles returns all defined role names.
func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// ParentRole returns the fallback parent role for role, if it has one.
func ParentRole(role Role) (Role, bool) {
	parent, ok := roleParents[role]
	return parent, ok
}

func isRoleName(name string) bool {
	_, ok := roleSet[Role(name)]
	return ok
}
