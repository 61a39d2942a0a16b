package debugui

import (
	"github.com/plus3/sigil/ecs"
)

type EntityBrowser struct {
	cache              *entityBrowserCache
	selected           *ecs.Entity
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspector struct{}

type SystemViewer struct {
	sortColumn    int
	sortAscending bool
}

type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
