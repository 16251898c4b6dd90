package simple

// TrackSegment is one built edge of track.  Segments are recorded in the
// direction they were built but traversal treats them as undirected.
type TrackSegment struct {
    From Coord
    To Coord
    FromTerrain TerrainType
    ToTerrain TerrainType
    Cost int
}

// EdgeKey is direction-independent, so a segment and its reverse collide.
func (s TrackSegment) EdgeKey() string {
    a, b := s.From.Key(), s.To.Key()
    if a > b {
        a, b = b, a
    }
    return a + "|" + b
}

func EdgeKeyFor(a, b Coord) string {
    ka, kb := a.Key(), b.Key()
    if ka > kb {
        ka, kb = kb, ka
    }
    return ka + "|" + kb
}
