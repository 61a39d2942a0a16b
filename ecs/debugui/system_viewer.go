package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/sigil/ecs"
)

func NewSystemViewer() SystemViewer {
	return SystemViewer{
		sortColumn:    3,
		sortAscending: false,
	}
}

func (sv *SystemViewer) Render(registry *ecs.Registry) {
	if !imgui.BeginV("System Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := registry.CollectStats()
	systems := stats.SystemBreakdown

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Signature")
		imgui.TableSetupColumn("Required Components")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sv.sortColumn = int(spec.ColumnIndex())
			sv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		sv.sortSystems(systems)

		for _, info := range systems {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(info.Name)

			imgui.TableNextColumn()
			imgui.Text(info.Signature.String())

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.RequiredTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.EntityCount))
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Total: %d systems", len(systems)))
	imgui.End()
}

func (sv *SystemViewer) sortSystems(systems []ecs.SystemInfo) {
	sort.Slice(systems, func(i, j int) bool {
		a, b := systems[i], systems[j]
		var less bool

		switch sv.sortColumn {
		case 0:
			less = a.Name < b.Name
		case 1:
			less = a.Signature < b.Signature
		case 2:
			less = len(a.RequiredTypes) < len(b.RequiredTypes)
		case 3:
			less = a.EntityCount < b.EntityCount
		default:
			less = a.Name < b.Name
		}

		if !sv.sortAscending {
			return !less
		}
		return less
	})
}
