package types

// Patch carries the fields an edit wants to change. Nil fields are left
// untouched.
type Patch struct {
	ID     *int
	Water  *float64
	Cost   *float64
	Weight *float64
	Colour *string
	Yield  *float64
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.ID == nil && p.Water == nil && p.Cost == nil &&
		p.Weight == nil && p.Colour == nil && p.Yield == nil
}
