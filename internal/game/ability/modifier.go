package ability

// Modifier is a signed adjustment to one ability, keyed by the descriptor of
// its source (e.g. "spell:bless").
type Modifier struct {
	Ability    Name
	Value      int
	Descriptor string
}

// NewModifier builds a Modifier. When descriptor is empty, gen supplies one;
// a nil gen falls back to RandomDescriptors.
//
// Postcondition: the returned Modifier has a non-empty Descriptor.
func NewModifier(ability Name, value int, descriptor string, gen DescriptorGenerator) Modifier {
	if descriptor == "" {
		if gen == nil {
			gen = RandomDescriptors{}
		}
		descriptor = gen.Generate()
	}
	return Modifier{Ability: ability, Value: value, Descriptor: descriptor}
}
