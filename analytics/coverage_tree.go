package analytics

import (
	"amcbackend/models"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// BuildCoverageTree rolls the per-room counts of raw up through
// area, floor, wing, building and site and returns one tree per site.
//
// Only room leaves take counts from raw. Every other node sums the children
// built just before it and recomputes its percentage from those sums; the
// leaf's reported percent is ignored. Sibling order follows the key order of
// raw. A level with no entries (or a null entry) becomes an empty aggregate.
func BuildCoverageTree(raw *models.CoverageByLocation) []models.LocationNode {
	return rollupLevel(raw, models.LevelSite, func(buildings *models.Buildings) []models.LocationNode {
		return rollupLevel(buildings, models.LevelBuilding, func(wings *models.Wings) []models.LocationNode {
			return rollupLevel(wings, models.LevelWing, func(floors *models.Floors) []models.LocationNode {
				return rollupLevel(floors, models.LevelFloor, func(areas *models.Areas) []models.LocationNode {
					return rollupLevel(areas, models.LevelArea, roomNodes)
				})
			})
		})
	})
}

// rollupLevel builds one node per entry of m, children first.
func rollupLevel[V any](m *orderedmap.OrderedMap[string, V], level models.Level, children func(V) []models.LocationNode) []models.LocationNode {
	if m == nil {
		return []models.LocationNode{}
	}
	nodes := make([]models.LocationNode, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		nodes = append(nodes, aggregate(pair.Key, level, children(pair.Value)))
	}
	return nodes
}

func aggregate(name string, level models.Level, children []models.LocationNode) models.LocationNode {
	node := models.LocationNode{Name: name, Level: level, Children: children}
	for _, child := range children {
		node.Total += child.Total
		node.Covered += child.Covered
	}
	node.Percent = Percent(node.Covered, node.Total)
	return node
}

func roomNodes(rooms *models.Rooms) []models.LocationNode {
	if rooms == nil {
		return []models.LocationNode{}
	}
	nodes := make([]models.LocationNode, 0, rooms.Len())
	for pair := rooms.Oldest(); pair != nil; pair = pair.Next() {
		leaf := pair.Value
		nodes = append(nodes, models.LocationNode{
			Name:     pair.Key,
			Level:    models.LevelRoom,
			Total:    leaf.Total,
			Covered:  leaf.Covered,
			Percent:  Percent(leaf.Covered, leaf.Total),
			Children: []models.LocationNode{},
		})
	}
	return nodes
}
