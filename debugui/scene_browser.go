package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/NaxHPL/blue"
)

// SceneBrowser renders the entity tree with per-entity activation toggles and
// the component list of the selected entity.
type SceneBrowser struct {
	selected uint32
}

// NewSceneBrowser creates an empty browser.
func NewSceneBrowser() *SceneBrowser {
	return &SceneBrowser{}
}

// Render draws the browser window.
func (sb *SceneBrowser) Render(scene *blue.Scene) {
	if !imgui.BeginV("Scene Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entities: %d", scene.EntityCount()))
	imgui.Separator()

	for _, root := range scene.Roots() {
		sb.renderEntity(root)
	}

	if e, ok := scene.Entity(sb.selected); ok {
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Components of %s", e.Name()))
		for _, c := range e.Components() {
			sb.renderComponent(c)
		}
	}

	imgui.End()
}

func (sb *SceneBrowser) renderEntity(e *blue.Entity) {
	flags := imgui.TreeNodeFlagsOpenOnArrow
	if len(e.Children()) == 0 {
		flags |= imgui.TreeNodeFlagsLeaf
	}
	if e.ID() == sb.selected {
		flags |= imgui.TreeNodeFlagsSelected
	}

	active := e.Active()
	if imgui.Checkbox(fmt.Sprintf("##active%d", e.ID()), &active) {
		e.SetActive(active)
	}
	imgui.SameLine()

	open := imgui.TreeNodeExStrV(fmt.Sprintf("%s (#%d)", e.Name(), e.ID()), flags)
	if imgui.IsItemClicked() {
		sb.selected = e.ID()
	}
	if open {
		for _, child := range e.Children() {
			sb.renderEntity(child)
		}
		imgui.TreePop()
	}
}

// componentFlags is the promoted ComponentBase surface every component has.
type componentFlags interface {
	Enabled() bool
	SetEnabled(bool)
	UpdateOrder() int
	RenderOrder() int
}

func (sb *SceneBrowser) renderComponent(c blue.Component) {
	name := reflect.TypeOf(c).String()
	b := c.(componentFlags)

	enabled := b.Enabled()
	if imgui.Checkbox(fmt.Sprintf("##enabled%p", c), &enabled) {
		b.SetEnabled(enabled)
	}
	imgui.SameLine()
	imgui.BulletText(fmt.Sprintf("%s (update %d, render %d)",
		name, b.UpdateOrder(), b.RenderOrder()))
}
