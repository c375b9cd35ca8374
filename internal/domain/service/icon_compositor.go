package service

// IconCompositor renders marker artwork
type IconCompositor interface {
	// Compose renders an offer marker from an image data URI and a label.
	// Undecodable images yield a Degraded icon instead of an error.
	Compose(imageDataURI, label string) Icon

	// ClusterBadge renders the member-count badge of a cluster
	ClusterBadge(count int) Icon
}
