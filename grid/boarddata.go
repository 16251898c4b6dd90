package grid

import (
    "local/eurorails/simple"
)

func c(row, col int) simple.Coord {
    return simple.Coord{Row: row, Col: col}
}

// DefaultBoard is the standard European map.  Unlisted in-bounds mileposts
// are clear terrain.
var DefaultBoard = BoardData{
    Rows: 44,
    Cols: 56,

    Mountains: []simple.Coord{
        // Pyrenees
        c(28, 10), c(28, 11), c(28, 12), c(29, 10), c(29, 11), c(29, 12), c(29, 13),
        // Massif Central
        c(24, 15), c(24, 16), c(25, 15), c(25, 16),
        // Carpathians
        c(22, 40), c(22, 41), c(23, 40), c(23, 41), c(23, 42),
        // Balkans
        c(28, 38), c(28, 39), c(29, 38),
    },
    Alpine: []simple.Coord{
        c(24, 24), c(24, 25), c(24, 26), c(25, 24), c(25, 25), c(25, 26), c(25, 27),
        c(26, 25), c(26, 26),
    },
    Water: []simple.Coord{
        // The Channel
        c(14, 8), c(14, 9), c(15, 8), c(15, 9), c(16, 8),
        // Baltic approaches
        c(8, 30), c(8, 31), c(9, 30), c(9, 31),
    },

    SmallCities: map[string]simple.Coord{
        "Bordeaux": c(26, 9),
        "Geneve": c(23, 20),
        "Krakow": c(20, 40),
        "Essen": c(15, 24),
        "Sevilla": c(33, 6),
        "Napoli": c(31, 30),
        "Goteborg": c(5, 28),
        "Brest": c(19, 4),
    },
    MediumCities: map[string]simple.Coord{
        "Lyon": c(24, 18),
        "Munchen": c(20, 28),
        "Milano": c(26, 24),
        "Barcelona": c(30, 13),
        "Hamburg": c(10, 26),
        "Lille": c(16, 14),
        "Praha": c(18, 32),
        "Budapest": c(22, 37),
        "Kobenhavn": c(7, 27),
        "Torino": c(26, 22),
    },
    MajorCityCenters: map[string]simple.Coord{
        "London": c(12, 6),
        "Paris": c(18, 14),
        "Berlin": c(14, 30),
        "Madrid": c(31, 9),
        "Roma": c(30, 27),
        "Wien": c(20, 34),
        "Warszawa": c(16, 40),
        "Ruhr": c(16, 22),
    },

    Ferries: []simple.Ferry{
        simple.Ferry{Name: "Dover-Calais", A: c(13, 8), B: c(16, 9), Cost: 3},
        simple.Ferry{Name: "Helsingor", A: c(6, 28), B: c(5, 29), Cost: 2},
    },
}
