package catalogjson

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"

	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// Bundle is the content of one catalog document
type Bundle struct {
	Recipes  []*sushi.Recipe
	Profiles []*customer.Profile
}

type recipeSpec struct {
	Name      string     `validate:"required"`
	Type      string     `validate:"required"`
	BaseScore int        `validate:"gte=0"`
	Ideal     [4]float64 `validate:"dive,gte=0,lte=1"`
	Tolerance [4]float64 `validate:"dive,gte=0"`
	Weights   [4]float64 `validate:"dive,gte=0"`
}

type presetSpec struct {
	Recipe string  `validate:"required"`
	Weight float64 `validate:"gte=0"`
}

type profileSpec struct {
	ID          string       `validate:"required"`
	MinDay      int          `validate:"gte=0"`
	MaxDay      int          `validate:"gtefield=MinDay"`
	SpawnWeight float64      `validate:"gte=0"`
	PartySize   int          `validate:"gte=0,lte=8"`
	Probability float64      `validate:"gte=0,lte=1"`
	MaxOrders   int          `validate:"gte=0"`
	Presets     []presetSpec `validate:"dive"`
}

// Parse reads a document shaped like:
//
//	{"recipes": [{"name": "Salmon Nigiri", "type": "SALMON", "base_score": 100,
//	              "ideal": {"fish_thickness": 0.5, ...}, "tolerance": {...}, "weights": {...}}],
//	 "profiles": [{"id": "regular", "name": "Regular", "type": "REGULAR", "patience_seconds": 14,
//	               "presets": [{"id": "usual", "recipe": "Salmon Nigiri", "weight": 3,
//	                            "request": {"label": "RiceLess", "offsets": {"rice_amount": -0.3}}}]}]}
//
// Missing weights default to 1. Recipe presets must reference a recipe in
// the same document or in known.
func Parse(doc []byte, known *sushi.Catalog) (*Bundle, error) {
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("catalog document is not valid JSON")
	}
	root := gjson.ParseBytes(doc)
	validate := validator.New()
	bundle := &Bundle{}

	var parseErr error
	root.Get("recipes").ForEach(func(_, v gjson.Result) bool {
		recipe, err := parseRecipe(v, validate)
		if err != nil {
			parseErr = err
			return false
		}
		bundle.Recipes = append(bundle.Recipes, recipe)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	names := make(map[string]bool)
	for _, r := range bundle.Recipes {
		names[strings.ToLower(r.Name())] = true
	}
	if known != nil {
		for _, r := range known.All() {
			names[strings.ToLower(r.Name())] = true
		}
	}

	root.Get("profiles").ForEach(func(_, v gjson.Result) bool {
		profile, err := parseProfile(v, validate, names)
		if err != nil {
			parseErr = err
			return false
		}
		bundle.Profiles = append(bundle.Profiles, profile)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if _, err := sushi.NewCatalog(bundle.Recipes...); err != nil {
		return nil, err
	}
	return bundle, nil
}

func parseRecipe(v gjson.Result, validate *validator.Validate) (*sushi.Recipe, error) {
	spec := recipeSpec{
		Name:      strings.TrimSpace(v.Get("name").String()),
		Type:      v.Get("type").String(),
		BaseScore: int(v.Get("base_score").Int()),
	}
	for i, d := range sushi.AllDimensions() {
		spec.Ideal[i] = v.Get("ideal." + d.String()).Float()
		spec.Tolerance[i] = v.Get("tolerance." + d.String()).Float()
		w := v.Get("weights." + d.String())
		if w.Exists() {
			spec.Weights[i] = w.Float()
		} else {
			spec.Weights[i] = 1
		}
	}
	if err := validate.Struct(spec); err != nil {
		return nil, fmt.Errorf("recipe %q: %w", spec.Name, err)
	}

	sushiType, err := sushi.ParseSushiType(spec.Type)
	if err != nil {
		return nil, fmt.Errorf("recipe %q: %w", spec.Name, err)
	}
	return sushi.NewRecipe(spec.Name, sushiType, toParameters(spec.Ideal), toParameters(spec.Tolerance), toWeights(spec.Weights), spec.BaseScore)
}

func parseProfile(v gjson.Result, validate *validator.Validate, recipes map[string]bool) (*customer.Profile, error) {
	id := strings.TrimSpace(v.Get("id").String())
	name := v.Get("name").String()
	if name == "" {
		name = id
	}
	p := customer.NewProfile(id, name)

	if t := v.Get("type"); t.Exists() {
		parsed, err := customer.ParseType(t.String())
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", id, err)
		}
		p.Type = parsed
	}
	if x := v.Get("min_day"); x.Exists() {
		p.MinDay = int(x.Int())
	}
	if x := v.Get("max_day"); x.Exists() {
		p.MaxDay = int(x.Int())
	}
	if x := v.Get("weight"); x.Exists() {
		p.SpawnWeight = x.Float()
	}
	if x := v.Get("party_size"); x.Exists() {
		p.PartySize = int(x.Int())
	}
	if x := v.Get("custom_orders"); x.Exists() {
		p.CanMakeCustomOrders = x.Bool()
	}
	if x := v.Get("max_orders"); x.Exists() {
		p.MaxOrders = int(x.Int())
	}
	p.UniquePerDay = v.Get("unique_per_day").Bool()
	p.Patience = time.Duration(v.Get("patience_seconds").Float() * float64(time.Second))
	p.CustomOrderProbability = v.Get("custom_order_probability").Float()
	p.CanMakeMultipleOrders = v.Get("multiple_orders").Bool()

	conv := v.Get("conversations")
	p.Conversations = customer.Conversations{
		Greeting:        conv.Get("greeting").String(),
		FirstOrder:      conv.Get("first_order").String(),
		AdditionalOrder: conv.Get("additional_order").String(),
		RepeatCustomer:  conv.Get("repeat_customer").String(),
		Farewell:        conv.Get("farewell").String(),
	}

	spec := profileSpec{
		ID:          id,
		MinDay:      p.MinDay,
		MaxDay:      p.MaxDay,
		SpawnWeight: p.SpawnWeight,
		PartySize:   p.PartySize,
		Probability: p.CustomOrderProbability,
		MaxOrders:   p.MaxOrders,
	}

	var presetErr error
	v.Get("presets").ForEach(func(_, pv gjson.Result) bool {
		preset, err := parsePreset(pv)
		if err != nil {
			presetErr = err
			return false
		}
		spec.Presets = append(spec.Presets, presetSpec{Recipe: preset.RecipeName, Weight: preset.Weight})
		p.OrderPresets = append(p.OrderPresets, preset)
		return true
	})
	if presetErr != nil {
		return nil, fmt.Errorf("profile %q: %w", id, presetErr)
	}

	if err := validate.Struct(spec); err != nil {
		return nil, fmt.Errorf("profile %q: %w", id, err)
	}
	for _, preset := range p.OrderPresets {
		if !recipes[strings.ToLower(preset.RecipeName)] {
			return nil, fmt.Errorf("profile %q: preset %q references unknown recipe %q", id, preset.OrderID, preset.RecipeName)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %q: %w", id, err)
	}
	return p, nil
}

func parsePreset(v gjson.Result) (customer.OrderPreset, error) {
	preset := customer.OrderPreset{
		OrderID:    v.Get("id").String(),
		RecipeName: v.Get("recipe").String(),
		Weight:     1,
	}
	if w := v.Get("weight"); w.Exists() {
		preset.Weight = w.Float()
	}

	req := v.Get("request")
	if !req.Exists() {
		return preset, nil
	}
	offsets := make(map[sushi.Dimension]float64)
	var dimErr error
	req.Get("offsets").ForEach(func(k, o gjson.Result) bool {
		d, err := sushi.ParseDimension(k.String())
		if err != nil {
			dimErr = err
			return false
		}
		offsets[d] = o.Float()
		return true
	})
	if dimErr != nil {
		return preset, dimErr
	}
	preset.Request = sushi.NewCustomRequest(req.Get("label").String(), offsets)
	return preset, nil
}

func toParameters(v [4]float64) sushi.ProcessParameters {
	return sushi.ProcessParameters{FishThickness: v[0], RiceAmount: v[1], PressDuration: v[2], WasabiAmount: v[3]}
}

func toWeights(v [4]float64) sushi.Weights {
	return sushi.Weights{FishThickness: v[0], RiceAmount: v[1], PressDuration: v[2], WasabiAmount: v[3]}
}
