package simple

type TrainType int
const (
    NoneTrain TrainType = iota
    FreightTrain
    FastFreightTrain
    HeavyFreightTrain
    SuperfreightTrain
)
var TrainTypeNames = map[TrainType]string {
    NoneTrain: "None",
    FreightTrain: "Freight",
    FastFreightTrain: "FastFreight",
    HeavyFreightTrain: "HeavyFreight",
    SuperfreightTrain: "Superfreight",
}

func (t TrainType) String() string {
    return TrainTypeNames[t]
}

var trainSpeeds = map[TrainType]int {
    FreightTrain: 9,
    FastFreightTrain: 12,
    HeavyFreightTrain: 9,
    SuperfreightTrain: 12,
}

var trainCapacities = map[TrainType]int {
    FreightTrain: 2,
    FastFreightTrain: 2,
    HeavyFreightTrain: 3,
    SuperfreightTrain: 3,
}

func (t TrainType) Speed() int {
    return trainSpeeds[t]
}

func (t TrainType) Capacity() int {
    return trainCapacities[t]
}

// Upgrades step speed or capacity, crossgrades (Fast<->Heavy) trade one for
// the other.  Both cost UpgradeCost.
var trainTransitions = map[TrainType][]TrainType {
    FreightTrain: []TrainType{FastFreightTrain, HeavyFreightTrain},
    FastFreightTrain: []TrainType{SuperfreightTrain, HeavyFreightTrain},
    HeavyFreightTrain: []TrainType{SuperfreightTrain, FastFreightTrain},
    SuperfreightTrain: []TrainType{},
}

func (t TrainType) CanUpgradeTo(to TrainType) bool {
    for _, v := range trainTransitions[t] {
        if v == to {
            return true
        }
    }
    return false
}

func (t TrainType) UpgradeTargets() []TrainType {
    return trainTransitions[t]
}
