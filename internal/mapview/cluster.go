package mapview

import (
	"math"
	"strconv"
	"sync"

	"waffer/internal/domain/service"
	"waffer/internal/util"

	"github.com/paulmach/orb"
)

// BadgeZIndex keeps cluster badges above offer markers
const BadgeZIndex = 1000

// BadgeRenderer renders cluster badge artwork
type BadgeRenderer interface {
	ClusterBadge(count int) service.Icon
}

// Cluster is one group of visible markers. Singletons have no badge and
// render their own marker.
type Cluster struct {
	Center  orb.Point
	Members []service.Marker
	Badge   service.Marker
}

// Count returns the number of member markers
func (c Cluster) Count() int {
	return len(c.Members)
}

// Bound returns the bounding box of the members
func (c Cluster) Bound() orb.Bound {
	bound := c.Members[0].Position().Bound()
	for _, member := range c.Members[1:] {
		bound = bound.Extend(member.Position())
	}

	return bound
}

// ClusterManager groups visible markers into pixel-radius clusters.
// Every Recompute discards the previous state; nothing is updated incrementally.
type ClusterManager struct {
	mu       sync.Mutex
	surface  service.MapSurface
	badges   BadgeRenderer
	radiusPx float64
	maxZoom  float64
	clusters []Cluster
}

// NewClusterManager creates a manager clustering within radiusPx up to maxZoom
func NewClusterManager(surface service.MapSurface, badges BadgeRenderer, radiusPx, maxZoom float64) *ClusterManager {
	return &ClusterManager{
		surface:  surface,
		badges:   badges,
		radiusPx: radiusPx,
		maxZoom:  maxZoom,
	}
}

// Recompute re-derives clusters for the given markers at the current camera zoom
func (m *ClusterManager) Recompute(visible []service.Marker) []Cluster {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clear()

	zoom := math.Floor(m.surface.Camera().Zoom)
	var groups [][]service.Marker
	if zoom > m.maxZoom || m.radiusPx <= 0 {
		groups = singletons(visible)
	} else {
		groups = groupByPixelRadius(visible, zoom, m.radiusPx)
	}

	clusters := make([]Cluster, 0, len(groups))
	for _, members := range groups {
		cluster := Cluster{Center: centroid(members), Members: members}
		if len(members) > 1 {
			cluster.Badge = m.renderBadge(cluster)
			for _, member := range members {
				member.SetCollapsed(true)
			}
		}
		clusters = append(clusters, cluster)
	}
	m.clusters = clusters

	return clusters
}

// Clusters returns the current cluster state
func (m *ClusterManager) Clusters() []Cluster {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]Cluster(nil), m.clusters...)
}

// Clear removes every badge and restores collapsed members
func (m *ClusterManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clear()
}

func (m *ClusterManager) clear() {
	for _, cluster := range m.clusters {
		if cluster.Badge != nil {
			cluster.Badge.Remove()
		}
		for _, member := range cluster.Members {
			member.SetCollapsed(false)
		}
	}
	m.clusters = nil
}

func (m *ClusterManager) renderBadge(cluster Cluster) service.Marker {
	bound := cluster.Bound()
	badge := m.surface.NewMarker(service.MarkerOptions{
		Position: cluster.Center,
		Icon:     m.badges.ClusterBadge(cluster.Count()),
		ZIndex:   BadgeZIndex,
		Title:    strconv.Itoa(cluster.Count()),
		OnClick: func() {
			m.surface.FitBounds(bound)
		},
	})
	badge.SetVisible(true)

	return badge
}

func singletons(markers []service.Marker) [][]service.Marker {
	groups := make([][]service.Marker, 0, len(markers))
	for _, marker := range markers {
		groups = append(groups, []service.Marker{marker})
	}

	return groups
}

type cellKey struct {
	x int
	y int
}

type pixelPoint struct {
	x float64
	y float64
}

// groupByPixelRadius greedily seeds a cluster at each unassigned marker and
// absorbs the unassigned markers within radiusPx of the seed. Cells are as wide
// as the radius, so the 3x3 neighbourhood of the seed holds every candidate.
func groupByPixelRadius(markers []service.Marker, zoom, radiusPx float64) [][]service.Marker {
	pixels := make([]pixelPoint, len(markers))
	grid := make(map[cellKey][]int)
	for idx, marker := range markers {
		x, y := util.MercatorPixel(marker.Position(), zoom)
		pixels[idx] = pixelPoint{x: x, y: y}

		key := cellOf(pixels[idx], radiusPx)
		grid[key] = append(grid[key], idx)
	}

	assigned := make([]bool, len(markers))
	radiusSq := radiusPx * radiusPx
	groups := make([][]service.Marker, 0)

	for seed := range markers {
		if assigned[seed] {
			continue
		}
		assigned[seed] = true
		members := []service.Marker{markers[seed]}

		center := cellOf(pixels[seed], radiusPx)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for _, idx := range grid[cellKey{x: center.x + dx, y: center.y + dy}] {
					if assigned[idx] {
						continue
					}
					ddx := pixels[idx].x - pixels[seed].x
					ddy := pixels[idx].y - pixels[seed].y
					if ddx*ddx+ddy*ddy <= radiusSq {
						assigned[idx] = true
						members = append(members, markers[idx])
					}
				}
			}
		}

		groups = append(groups, members)
	}

	return groups
}

func cellOf(p pixelPoint, size float64) cellKey {
	return cellKey{
		x: int(math.Floor(p.x / size)),
		y: int(math.Floor(p.y / size)),
	}
}

func centroid(markers []service.Marker) orb.Point {
	var lon, lat float64
	for _, marker := range markers {
		lon += marker.Position().Lon()
		lat += marker.Position().Lat()
	}
	n := float64(len(markers))

	return orb.Point{lon / n, lat / n}
}
