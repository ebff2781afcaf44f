package game

import (
	"strconv"

	"gosnake/internal/core"
)

// Parameters lists the settings this game was built with. Keys match FromMap.
func (s *State) Parameters() core.ParameterSnapshot {
	cfg := s.cfg
	cells := core.Size{W: cfg.Width, H: cfg.Height}.Cells(cfg.Unit)
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name:    "Board",
				Summary: strconv.Itoa(cells.W) + "x" + strconv.Itoa(cells.H) + " cells",
				Params: []core.Parameter{
					intParam("w", "Width", cfg.Width),
					intParam("h", "Height", cfg.Height),
					intParam("unit", "Unit size", cfg.Unit),
					boolParam("strict", "Strict bounds", cfg.StrictBounds, "far edge counts as wall"),
				},
			},
			{
				Name: "Snake",
				Params: []core.Parameter{
					intParam("length", "Initial length", cfg.InitialLength),
					{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(cfg.Seed, 10)},
				},
			},
		},
	}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func boolParam(key, label string, v bool, desc string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(v), Description: desc}
}
