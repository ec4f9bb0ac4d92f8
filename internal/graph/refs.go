package graph

import "strings"

// ReferencedIdentifiers collects every identifier mentioned by any element's
// configuration, independent of control flow. References may be dotted field
// paths ("varAccounts.Name"); only the leading segment names an identifier.
func ReferencedIdentifiers(g *Graph) map[string]struct{} {
	refs := make(map[string]struct{})
	for _, name := range g.Names() {
		for _, ref := range g.Element(name).ReferencedIDs {
			if ref == "" {
				continue
			}
			head, _, _ := strings.Cut(ref, ".")
			refs[head] = struct{}{}
		}
	}
	return refs
}
