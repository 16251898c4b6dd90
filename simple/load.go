package simple

// Load is a cargo type ("Coal", "Wine", ...).  The board data decides which
// loads exist; the pipeline only matches them by name.
type Load string

const NoneLoad Load = ""

// Demand is one line of a demand card: deliver Load to City for Payment.
type Demand struct {
    City string
    Load Load
    Payment int
}

// DemandCard has three demands; fulfilling any one discards the card.
type DemandCard struct {
    Id int
    Demands []Demand
}
