package action

// Unit is the sequence of actions recorded during one user interaction.
// One user undo reverts exactly one unit.
type Unit struct {
	Composite
}

func NewUnit() *Unit {
	return &Unit{}
}
