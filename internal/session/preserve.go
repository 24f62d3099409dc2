package session

// PreservedState is the subset of player state that survives a scene
// transition. Everything scene-local (position, hidden objects, trigger
// state) deliberately stays behind.
type PreservedState struct {
	Score         int                           `json:"score"`
	Inventory     []CollectedItem               `json:"inventory"`
	Variables     map[string]any                `json:"variables"`
	Objectives    map[string]*ObjectiveProgress `json:"objectives"`
	VisitedScenes []string                      `json:"visited_scenes"`
	ElapsedMs     int64                         `json:"elapsed_ms"`
}

// ExtractPreservedState snapshots the cross-scene subset of a player state.
// The snapshot owns its data; later mutation of the source does not leak in.
func ExtractPreservedState(st *PlayerState) *PreservedState {
	p := &PreservedState{
		Score:      st.Score,
		Inventory:  make([]CollectedItem, len(st.Inventory)),
		Variables:  make(map[string]any, len(st.Variables)),
		Objectives: make(map[string]*ObjectiveProgress, len(st.Objectives)),
		ElapsedMs:  st.ElapsedMs,
	}
	copy(p.Inventory, st.Inventory)
	for k, v := range st.Variables {
		p.Variables[k] = v
	}
	for id, op := range st.Objectives {
		cp := *op
		p.Objectives[id] = &cp
	}
	for id, visited := range st.VisitedScenes {
		if visited {
			p.VisitedScenes = append(p.VisitedScenes, id)
		}
	}
	return p
}

// ApplyPreservedState restores a snapshot into a freshly constructed player
// state for the next scene. Inventory collection timestamps are re-stamped
// to the carried elapsed time: collection order survives, collection time
// does not, since cross-scene elapsed time already carries forward.
func ApplyPreservedState(p *PreservedState, st *PlayerState) {
	if p == nil {
		return
	}

	st.Score = p.Score
	st.ElapsedMs = p.ElapsedMs

	st.Inventory = make([]CollectedItem, len(p.Inventory))
	copy(st.Inventory, p.Inventory)
	for i := range st.Inventory {
		st.Inventory[i].CollectedAt = st.ElapsedMs
	}

	for k, v := range p.Variables {
		st.Variables[k] = v
	}
	for id, op := range p.Objectives {
		cp := *op
		st.Objectives[id] = &cp
	}
	for _, id := range p.VisitedScenes {
		st.VisitedScenes[id] = true
	}
}
