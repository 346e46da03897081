package types

// Group is an ordered set of files sharing one content digest. Member
// order is discovery order; the first member is the retained source and
// the remainder are copies to be replaced with links. Membership is
// final once the index is built.
type Group struct {
	Digest string
	Files  []File
}

// Source returns the canonical member: the first file discovered with
// this group's digest.
func (g *Group) Source() File {
	return g.Files[0]
}

// Copies returns the non-canonical members in discovery order.
func (g *Group) Copies() []File {
	return g.Files[1:]
}

// Redundant returns the bytes held by the group's copies, the amount a
// replacement run reclaims.
func (g *Group) Redundant() int64 {
	var total int64
	for _, f := range g.Files[1:] {
		total += f.Size
	}
	return total
}

// Stats summarizes one run for the reporting layer.
type Stats struct {
	// Matched counts files the scan matched.
	Matched int `json:"matched" yaml:"matched"`

	// Unique counts distinct contents among matched files.
	Unique int `json:"unique" yaml:"unique"`

	// Sources counts duplicate groups; each keeps exactly one source.
	Sources int `json:"sources" yaml:"sources"`

	// Copies counts redundant copies across all groups.
	Copies int `json:"copies" yaml:"copies"`

	// Reclaimable is the total size in bytes of all redundant copies.
	Reclaimable int64 `json:"reclaimable" yaml:"reclaimable"`
}
