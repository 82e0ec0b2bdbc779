package sim

import (
	"strconv"

	"gol-paint/internal/core"
)

// Parameters reports the loop's current values for display.
func (l *Loop) Parameters() core.ParameterSnapshot {
	var w, h, pop int
	if l.grid != nil {
		w, h, pop = l.grid.W, l.grid.H, l.grid.Population()
	}
	summary := l.hist.Summary()
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Simulation",
				Params: []core.Parameter{
					{Key: "state", Label: "State", Type: core.ParamTypeString, Value: l.state.String()},
					{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(l.gen, 10)},
					intParam("fps", "FPS", l.cfg.FPS),
					{Key: "interval", Label: "Tick", Type: core.ParamTypeString, Value: l.task.Interval().String()},
				},
			},
			{
				Name: "Grid",
				Params: []core.Parameter{
					intParam("w", "Width", w),
					intParam("h", "Height", h),
					intParam("divisor", "Cell size", l.cfg.Divisor),
					{Key: "pattern", Label: "Seed pattern", Type: core.ParamTypeString, Value: l.cfg.Pattern},
					boolParam("preserve", "Keep on resize", l.cfg.PreserveOnResize),
					boolParam("hover", "Hover paint", l.cfg.HoverPaint),
				},
			},
			{
				Name: "Population",
				Params: []core.Parameter{
					intParam("population", "Live cells", pop),
					floatParam("mean", "Mean", summary.Mean),
					floatParam("stddev", "Std dev", summary.StdDev),
				},
			},
		},
	}
}

// ParameterControls lists the values adjustable at runtime.
func (l *Loop) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fps", Label: "FPS", Step: 1, Min: 1, Max: 120, HasMin: true, HasMax: true},
		{Key: "divisor", Label: "Cell size", Step: 1, Min: 2, Max: 64, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a runtime adjustment. It reports whether key was
// recognized.
func (l *Loop) SetIntParameter(key string, value int) bool {
	for _, ctrl := range l.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "fps":
			l.SetFPS(value)
		case "divisor":
			l.SetDivisor(value)
		}
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', 1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
