package simple

type ActionKind int
const (
    NoneAction ActionKind = iota
    MoveTrain
    BuildTrack
    PickupLoad
    DeliverLoad
    DropLoad
    UpgradeTrain
    DiscardHand
    PassTurn
)
var ActionKindNames = map[ActionKind]string {
    NoneAction: "None",
    MoveTrain: "MoveTrain",
    BuildTrack: "BuildTrack",
    PickupLoad: "PickupLoad",
    DeliverLoad: "DeliverLoad",
    DropLoad: "DropLoad",
    UpgradeTrain: "UpgradeTrain",
    DiscardHand: "DiscardHand",
    PassTurn: "PassTurn",
}

func (k ActionKind) String() string {
    return ActionKindNames[k]
}
