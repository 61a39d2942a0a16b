package ecs

// RegistryStats is a point-in-time snapshot of a registry's contents, used
// by inspection tooling and stress reports.
type RegistryStats struct {
	EntityCount     int // alive entities
	TotalAllocated  int // entities ever created, including destroyed
	PoolCount       int // component pools constructed so far
	SystemCount     int
	PendingAdd      int
	PendingKill     int
	SystemBreakdown []SystemInfo
}

// SystemInfo describes one registered system.
type SystemInfo struct {
	Name          string
	Signature     Signature
	RequiredTypes []string
	EntityCount   int
}

// CollectStats gathers a RegistryStats snapshot.
func (r *Registry) CollectStats() RegistryStats {
	pools := 0
	for _, p := range r.pools {
		if p != nil {
			pools++
		}
	}

	stats := RegistryStats{
		EntityCount:    r.NumAlive(),
		TotalAllocated: r.numEntities,
		PoolCount:      pools,
		SystemCount:    len(r.systems),
		PendingAdd:     len(r.pendingAdd),
		PendingKill:    len(r.pendingKill),
	}

	for _, key := range r.order {
		sys := r.systems[key].base()
		sig := sys.Signature()
		required := make([]string, 0, sig.Count())
		for _, cid := range sig.IDs() {
			if t := ComponentTypeOf(cid); t != nil {
				required = append(required, t.String())
			}
		}
		stats.SystemBreakdown = append(stats.SystemBreakdown, SystemInfo{
			Name:          key.Name(),
			Signature:     sig,
			RequiredTypes: required,
			EntityCount:   sys.NumEntities(),
		})
	}

	return stats
}
