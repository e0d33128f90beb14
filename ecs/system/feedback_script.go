package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptedFeedbackCurve evaluates a tengo script that reads the global
// `stamina` and assigns `volume` and `vignette`.
type ScriptedFeedbackCurve struct {
	name     string
	compiled *tengo.Compiled
}

func NewScriptedFeedbackCurve(name string, src []byte) (*ScriptedFeedbackCurve, error) {
	script := tengo.NewScript(src)
	if err := script.Add("stamina", 0.0); err != nil {
		return nil, fmt.Errorf("feedback script %q: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("feedback script %q: compile: %w", name, err)
	}

	// Globals are only defined once the script has assigned them.
	if err := compiled.Set("stamina", 0.0); err != nil {
		return nil, fmt.Errorf("feedback script %q: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("feedback script %q: run: %w", name, err)
	}
	for _, out := range []string{"volume", "vignette"} {
		if !compiled.IsDefined(out) {
			return nil, fmt.Errorf("feedback script %q: missing output %q", name, out)
		}
	}

	return &ScriptedFeedbackCurve{name: name, compiled: compiled}, nil
}

func (c *ScriptedFeedbackCurve) Eval(stamina float64) (float64, float64, error) {
	if err := c.compiled.Set("stamina", stamina); err != nil {
		return 0, 0, fmt.Errorf("feedback script %q: %w", c.name, err)
	}
	if err := c.compiled.Run(); err != nil {
		return 0, 0, fmt.Errorf("feedback script %q: run: %w", c.name, err)
	}
	return c.compiled.Get("volume").Float(), c.compiled.Get("vignette").Float(), nil
}
