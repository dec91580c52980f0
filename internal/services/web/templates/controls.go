package templates

import (
	"context"
	"sort"
	"strconv"

	"github.com/a-h/templ"
)

// Option is one choice of a select, radio or checkbox control.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Options builds options whose labels equal their values.
func Options(values []string, selected ...string) []Option {
	out := make([]Option, 0, len(values))
	for _, value := range values {
		on := false
		for _, s := range selected {
			if s == value {
				on = true
				break
			}
		}
		out = append(out, Option{Value: value, Label: value, Selected: on})
	}
	return out
}

// Form is an HTMX form: any change or submit issues a GET to action with
// the whole control state and swaps the response into target.
type Form struct {
	ID     string
	Action string
	Target string
	// Swap defaults to outerHTML.
	Swap string
	// Data holds extra data-* attributes read by app.js.
	Data map[string]string
}

// Render wraps the controls in the form element.
func (f Form) Render(controls ...templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		swap := f.Swap
		if swap == "" {
			swap = "outerHTML"
		}
		h.raw("<form")
		h.attr("id", f.ID)
		h.attr("class", "controls")
		h.attr("action", f.Action)
		h.attr("method", "get")
		h.attr("hx-get", f.Action)
		h.attr("hx-target", f.Target)
		h.attr("hx-swap", swap)
		h.attr("hx-trigger", "change, submit")
		keys := make([]string, 0, len(f.Data))
		for key := range f.Data {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			h.attr("data-"+key, f.Data[key])
		}
		h.raw(">")
		for _, c := range controls {
			h.render(ctx, c)
		}
		h.raw("</form>")
	})
}

// Select renders a labelled dropdown.
func Select(name, label string, options []Option) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		id := "ctl-" + name
		h.raw(`<label class="control"`)
		h.attr("for", id)
		h.raw("><span>")
		h.text(label)
		h.raw("</span><select")
		h.attr("id", id)
		h.attr("name", name)
		h.raw(">")
		for _, option := range options {
			h.raw("<option")
			h.attr("value", option.Value)
			h.flag("selected", option.Selected)
			h.raw(">")
			h.text(option.Label)
			h.raw("</option>")
		}
		h.raw("</select></label>")
	})
}

// Radios renders a labelled group of radio buttons.
func Radios(name, label string, options []Option) templ.Component {
	return choiceGroup("radio", name, label, options)
}

// Checkboxes renders a labelled group of checkboxes sharing name.
func Checkboxes(name, label string, options []Option) templ.Component {
	return choiceGroup("checkbox", name, label, options)
}

func choiceGroup(kind, name, label string, options []Option) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<fieldset class="control"><legend>`)
		h.text(label)
		h.raw("</legend>")
		for _, option := range options {
			h.raw("<label><input")
			h.attr("type", kind)
			h.attr("name", name)
			h.attr("value", option.Value)
			h.flag("checked", option.Selected)
			h.raw(">")
			h.text(option.Label)
			h.raw("</label>")
		}
		h.raw("</fieldset>")
	})
}

// Toggle renders an on/off radio pair posting "on" or "off".
func Toggle(name, label string, on bool, loc Localizer) templ.Component {
	return Radios(name, label, []Option{
		{Value: "on", Label: T(loc, "control.on"), Selected: on},
		{Value: "off", Label: T(loc, "control.off"), Selected: !on},
	})
}

// NumberInput renders a bounded integer field.
func NumberInput(name, label string, value, lo, hi int) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		id := "ctl-" + name
		h.raw(`<label class="control"`)
		h.attr("for", id)
		h.raw("><span>")
		h.text(label)
		h.raw(`</span><input type="number"`)
		h.attr("id", id)
		h.attr("name", name)
		h.attr("value", strconv.Itoa(value))
		h.attr("min", strconv.Itoa(lo))
		h.attr("max", strconv.Itoa(hi))
		h.raw("></label>")
	})
}

// DecimalInput renders a float field with a step.
func DecimalInput(name, label, value, step string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		id := "ctl-" + name
		h.raw(`<label class="control"`)
		h.attr("for", id)
		h.raw("><span>")
		h.text(label)
		h.raw(`</span><input type="number" min="0"`)
		h.attr("id", id)
		h.attr("name", name)
		h.attr("value", value)
		h.attr("step", step)
		h.raw("></label>")
	})
}

// Hidden carries state the user does not edit, such as a seed.
func Hidden(name, value string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<input type="hidden"`)
		h.attr("name", name)
		h.attr("value", value)
		h.raw(">")
	})
}

// Button submits the form with name=value.
func Button(name, value, label string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<button type="submit"`)
		h.attr("name", name)
		h.attr("value", value)
		h.raw(">")
		h.text(label)
		h.raw("</button>")
	})
}

// Stepper renders a minus/plus pair around the current value. The buttons
// submit action=<name>-minus and action=<name>-plus.
func Stepper(name, label string, value int, minusAction, plusAction string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="control stepper"><span>`)
		h.text(label)
		h.raw(`</span><button type="submit" name="action"`)
		h.attr("value", minusAction)
		h.attr("aria-label", name+" -")
		h.raw(`>-</button><output`)
		h.attr("name", name+"-value")
		h.raw(">")
		h.text(strconv.Itoa(value))
		h.raw(`</output><button type="submit" name="action"`)
		h.attr("value", plusAction)
		h.attr("aria-label", name+" +")
		h.raw(`>+</button><input type="hidden"`)
		h.attr("name", name)
		h.attr("value", strconv.Itoa(value))
		h.raw("></div>")
	})
}

// StreamButton starts a websocket run through app.js and logs progress into
// the element with id logID.
func StreamButton(label, logID string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<button type="button" data-stream-start`)
		h.attr("data-log", logID)
		h.raw(">")
		h.text(label)
		h.raw("</button>")
	})
}
