package bot

import (
    "fmt"
    "sort"
    "local/eurorails/graph"
    "local/eurorails/simple"
)

// demandChain is one pickup-city -> delivery-city pairing for a held card.
type demandChain struct {
    PickupCity string
    DeliveryCity string
    Load simple.Load
    CardId int
    Payment int

    // The next city to connect: the pickup city until it is on the
    // network, then the delivery city.
    Target string

    EstimatedCost int
    Score float64
}

const stickyTargetBonus = 1.5
const buildChainsConsidered = 3

func (g *Generator) buildOptions(snap Snapshot, union *graph.TrackGraph, mem *simple.BotMemory) []Option {
    budget := buildBudget(snap.Bot.Money)
    if budget <= 0 {
        return []Option{infeasible(simple.BuildTrack, "no money to build")}
    }

    chains := g.demandChains(snap, mem)
    if len(chains) == 0 {
        return []Option{infeasible(simple.BuildTrack, "no demand chains from held cards")}
    }

    starts := g.buildStarts(snap, chains[0])
    if len(starts) == 0 {
        return []Option{infeasible(simple.BuildTrack, "no legal start mileposts")}
    }

    r := []Option{}
    for i, ch := range chains {
        if i >= buildChainsConsidered {
            break
        }
        targets := g.cityMileposts(ch.Target)
        if len(targets) == 0 {
            continue
        }
        bp := g.buildToward(union, snap, starts, targets, budget)
        if !bp.Reached || len(bp.Segments) == 0 {
            continue
        }
        r = append(r, Option{
            Kind: simple.BuildTrack,
            Feasible: true,
            Reason: fmt.Sprintf("build toward %s for %s -> %s (payment %d)",
                ch.Target, ch.PickupCity, ch.DeliveryCity, ch.Payment),
            Segments: bp.Segments,
            EstimatedCost: bp.TurnCost,
            Budget: budget,
            TargetCity: ch.Target,
            ChainScore: ch.Score,
            CardId: ch.CardId,
            Load: ch.Load,
            Payment: ch.Payment,
        })
    }
    if len(r) == 0 {
        return []Option{infeasible(simple.BuildTrack, "no chain target is buildable toward")}
    }
    return r
}

// demandChains ranks pickup->delivery pairings by completability: payment
// over estimated turns to finish, quadratically penalized when the track
// bill exceeds the money on hand, with a loyalty bonus for the remembered
// build target while it is still fresh.
func (g *Generator) demandChains(snap Snapshot, mem *simple.BotMemory) []demandChain {
    network := g.ownNodeSet(snap)
    speed := snap.Bot.Train.Speed()

    chains := []demandChain{}
    for _, card := range snap.Bot.Cards {
        for _, d := range card.Demands {
            deliveryCoord, ok := g.grid.CityCoord(d.City)
            if !ok {
                continue
            }
            for city, loads := range snap.CityLoads {
                if !hasLoad(loads, d.Load) || city == d.City {
                    continue
                }
                pickupCoord, ok := g.grid.CityCoord(city)
                if !ok {
                    continue
                }

                ch := demandChain{
                    PickupCity: city,
                    DeliveryCity: d.City,
                    Load: d.Load,
                    CardId: card.CardId,
                    Payment: d.Payment,
                }

                buildDist := 0
                if !g.cityOnNetwork(city, network) {
                    ch.Target = city
                    buildDist += g.networkDistance(snap, network, pickupCoord)
                } else {
                    ch.Target = d.City
                }
                if !g.cityOnNetwork(d.City, network) {
                    buildDist += simple.Distance(pickupCoord, deliveryCoord)
                }

                // Average terrain runs about double clear cost.
                ch.EstimatedCost = buildDist * 2
                buildTurns := (ch.EstimatedCost + simple.MaxBuildPerTurn - 1) / simple.MaxBuildPerTurn
                moveDist := simple.Distance(pickupCoord, deliveryCoord)
                if snap.Bot.Position != nil {
                    moveDist += simple.Distance(*snap.Bot.Position, pickupCoord)
                }
                moveTurns := (moveDist + speed - 1) / speed
                totalTurns := buildTurns + moveTurns + 1

                ch.Score = float64(d.Payment) / float64(totalTurns)
                if over := ch.EstimatedCost - snap.Bot.Money; over > 0 {
                    ch.Score /= 1 + float64(over*over)/100
                }
                if mem != nil && mem.BuildTarget != "" && mem.BuildTarget == ch.Target &&
                    mem.TurnsOnTarget < simple.StaleTargetTurns {
                    ch.Score *= stickyTargetBonus
                }
                chains = append(chains, ch)
            }
        }
    }

    sort.SliceStable(chains, func(i, j int) bool {
        if chains[i].Score != chains[j].Score {
            return chains[i].Score > chains[j].Score
        }
        return chains[i].Target < chains[j].Target
    })
    return chains
}

// buildStarts is where new track may begin: the bot's existing endpoints,
// or if it owns nothing yet, the outposts of the starting hub chosen for
// the best chain.  Centers are never starts, they have no external exits.
func (g *Generator) buildStarts(snap Snapshot, top demandChain) []simple.Coord {
    if len(snap.Bot.Track) > 0 {
        seen := map[string]bool{}
        r := []simple.Coord{}
        for _, s := range snap.Bot.Track {
            for _, c := range []simple.Coord{s.From, s.To} {
                if !seen[c.Key()] {
                    seen[c.Key()] = true
                    r = append(r, c)
                }
            }
        }
        return r
    }
    hub := g.chooseStartingHub(top)
    if hub == nil {
        return nil
    }
    return hub.Outposts
}

// chooseStartingHub simulates which major city best serves the top chain:
// the one whose center minimizes the run to the pickup city plus on to the
// delivery city.  Name breaks ties so the choice is stable.
func (g *Generator) chooseStartingHub(top demandChain) *simple.MajorCity {
    pickup, ok := g.grid.CityCoord(top.PickupCity)
    if !ok {
        return nil
    }
    delivery, _ := g.grid.CityCoord(top.DeliveryCity)

    var best *simple.MajorCity
    bestDist := -1
    majors := g.grid.MajorCities()
    for i := range majors {
        m := majors[i]
        d := simple.Distance(m.Center, pickup) + simple.Distance(pickup, delivery)
        if bestDist == -1 || d < bestDist || (d == bestDist && m.Name < best.Name) {
            bestDist = d
            best = &majors[i]
        }
    }
    return best
}

// cityMileposts are the coordinates that count as "reached" for a build
// target: the outposts for a major city, the city tile otherwise.
func (g *Generator) cityMileposts(city string) []simple.Coord {
    c, ok := g.grid.CityCoord(city)
    if !ok {
        return nil
    }
    if g.grid.IsMajorCityCenter(c) {
        for _, m := range g.grid.MajorCities() {
            if m.Name == city {
                return m.Outposts
            }
        }
    }
    return []simple.Coord{c}
}

func (g *Generator) ownNodeSet(snap Snapshot) map[string]bool {
    r := map[string]bool{}
    for _, s := range snap.Bot.Track {
        r[s.From.Key()] = true
        r[s.To.Key()] = true
    }
    return r
}

func (g *Generator) cityOnNetwork(city string, network map[string]bool) bool {
    for _, c := range g.cityMileposts(city) {
        if network[c.Key()] {
            return true
        }
    }
    c, ok := g.grid.CityCoord(city)
    return ok && network[c.Key()]
}

// networkDistance is the hex distance from the closest network milepost
// (or the train, or anywhere, in that order of fallback) to the target.
func (g *Generator) networkDistance(snap Snapshot, network map[string]bool, target simple.Coord) int {
    best := -1
    for k := range network {
        var c simple.Coord
        if _, err := sscanKey(k, &c); err != nil {
            continue
        }
        d := simple.Distance(c, target)
        if best == -1 || d < best {
            best = d
        }
    }
    if best >= 0 {
        return best
    }
    if snap.Bot.Position != nil {
        return simple.Distance(*snap.Bot.Position, target)
    }
    // No track, no position: initial build.  Assume a hub lands nearby.
    return 5
}

func sscanKey(k string, c *simple.Coord) (int, error) {
    return fmt.Sscanf(k, "%d,%d", &c.Row, &c.Col)
}

func hasLoad(loads []simple.Load, l simple.Load) bool {
    for _, v := range loads {
        if v == l {
            return true
        }
    }
    return false
}
