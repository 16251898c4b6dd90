package simple

// MajorCity is a center milepost ringed by outposts.  Center and outposts
// are internally connected by free public edges; external track may only
// reach the outposts.
type MajorCity struct {
    Name string
    Center Coord
    Outposts []Coord
}

// Ferry is a public water crossing between two mileposts.  Crossing one
// ends movement for the turn and halves speed the following turn.
type Ferry struct {
    Name string
    A Coord
    B Coord
    Cost int
}
