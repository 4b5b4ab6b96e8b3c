package sushi

// Plate is the served dish: the target recipe plus parameters captured when crafting finished
type Plate struct {
	recipe     *Recipe
	parameters ProcessParameters
}

// NewPlate captures a copy of params
func NewPlate(recipe *Recipe, params ProcessParameters) *Plate {
	return &Plate{recipe: recipe, parameters: params}
}

func (p *Plate) Recipe() *Recipe { return p.recipe }
func (p *Plate) Parameters() ProcessParameters { return p.parameters }
