package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/sigil/ecs"
)

type entityInfo struct {
	Entity         ecs.Entity
	Signature      ecs.Signature
	ComponentTypes []string
}

type entityBrowserCache struct {
	entities      []entityInfo
	lastAllocated int
	sortColumn    int
	sortAscending bool
}

func NewEntityBrowser(maxEntitiesPerPage int) EntityBrowser {
	return EntityBrowser{
		cache: &entityBrowserCache{
			sortAscending: true,
		},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowser) Render(registry *ecs.Registry) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(registry)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Signature")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		filtered := eb.getFilteredEntities()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filtered))

		for i := startIdx; i < endIdx; i++ {
			info := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selected != nil && eb.selected.ID() == info.Entity.ID()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.Entity.ID()), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				selected := info.Entity
				eb.selected = &selected
			}

			imgui.TableNextColumn()
			imgui.Text(info.Signature.String())

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(info.ComponentTypes)))
		}

		imgui.EndTable()
	}

	filtered := eb.getFilteredEntities()

	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

func (eb *EntityBrowser) rebuildCacheIfNeeded(registry *ecs.Registry) {
	if eb.cache.lastAllocated != registry.NumEntities() {
		eb.cache.entities = nil
		eb.cache.lastAllocated = registry.NumEntities()
	}

	if eb.cache.entities == nil {
		eb.rebuildCache(registry)
	}
}

func (eb *EntityBrowser) rebuildCache(registry *ecs.Registry) {
	eb.cache.entities = make([]entityInfo, 0, 1024)

	for e := range registry.Entities() {
		sig, err := registry.SignatureOf(e)
		if err != nil {
			continue
		}

		componentTypes := make([]string, 0, sig.Count())
		for _, cid := range sig.IDs() {
			if t := ecs.ComponentTypeOf(cid); t != nil {
				componentTypes = append(componentTypes, t.String())
			}
		}

		eb.cache.entities = append(eb.cache.entities, entityInfo{
			Entity:         e,
			Signature:      sig,
			ComponentTypes: componentTypes,
		})
	}

	eb.sortEntities()
}

func (eb *EntityBrowser) sortEntities() {
	sort.Slice(eb.cache.entities, func(i, j int) bool {
		a, b := eb.cache.entities[i], eb.cache.entities[j]
		var less bool

		switch eb.cache.sortColumn {
		case 0:
			less = a.Entity.ID() < b.Entity.ID()
		case 1:
			less = a.Signature < b.Signature
		case 2:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 3:
			less = len(a.ComponentTypes) < len(b.ComponentTypes)
		default:
			less = a.Entity.ID() < b.Entity.ID()
		}

		if !eb.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowser) getFilteredEntities() []entityInfo {
	if eb.filterText == "" {
		return eb.cache.entities
	}

	filtered := make([]entityInfo, 0, len(eb.cache.entities))
	filterLower := strings.ToLower(eb.filterText)

	for _, info := range eb.cache.entities {
		idStr := fmt.Sprintf("%d", info.Entity.ID())
		componentsStr := strings.ToLower(strings.Join(info.ComponentTypes, " "))

		if !strings.Contains(idStr, filterLower) &&
			!strings.Contains(info.Signature.String(), filterLower) &&
			!strings.Contains(componentsStr, filterLower) {
			continue
		}

		filtered = append(filtered, info)
	}

	return filtered
}

// GetSelectedEntity returns the entity highlighted in the browser, or nil.
func (eb *EntityBrowser) GetSelectedEntity() *ecs.Entity {
	return eb.selected
}
