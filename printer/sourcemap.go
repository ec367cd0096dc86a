package printer

import "encoding/json"

// MapPos is a location in a file.
type MapPos struct {
	Line   uint32 `json:"line"`   // 0-indexed line number
	Column uint32 `json:"column"` // 0-indexed column
}

// SourceMap provides bidirectional mapping between source (.jsx) and
// target (.js) positions. Nested maps give O(1) lookups: map[line]map[column].
type SourceMap struct {
	// SourceFile is the original .jsx file path.
	SourceFile string `json:"sourceFile"`

	// TargetFile is the generated .js file path.
	TargetFile string `json:"targetFile"`

	// SourceToTarget maps .jsx positions to .js positions.
	SourceToTarget map[uint32]map[uint32]MapPos `json:"sourceToTarget"`

	// TargetToSource maps .js positions to .jsx positions.
	TargetToSource map[uint32]map[uint32]MapPos `json:"targetToSource"`
}

// NewSourceMap creates an empty SourceMap.
func NewSourceMap() *SourceMap {
	return &SourceMap{
		SourceToTarget: make(map[uint32]map[uint32]MapPos),
		TargetToSource: make(map[uint32]map[uint32]MapPos),
	}
}

// AddMapping records a mapping between a source and a target position.
func (sm *SourceMap) AddMapping(srcLine, srcCol, tgtLine, tgtCol uint32) {
	if _, ok := sm.SourceToTarget[srcLine]; !ok {
		sm.SourceToTarget[srcLine] = make(map[uint32]MapPos)
	}
	sm.SourceToTarget[srcLine][srcCol] = MapPos{Line: tgtLine, Column: tgtCol}

	if _, ok := sm.TargetToSource[tgtLine]; !ok {
		sm.TargetToSource[tgtLine] = make(map[uint32]MapPos)
	}
	sm.TargetToSource[tgtLine][tgtCol] = MapPos{Line: srcLine, Column: srcCol}
}

// SourcePositionFromTarget looks up the source position for a generated
// position. If the exact column has no mapping, it searches backward on
// the same line, then earlier lines.
func (sm *SourceMap) SourcePositionFromTarget(line, col uint32) (MapPos, bool) {
	if lineMap, ok := sm.TargetToSource[line]; ok {
		if pos, ok := lineMap[col]; ok {
			return pos, true
		}
		for c := col; c > 0; c-- {
			if pos, ok := lineMap[c-1]; ok {
				return pos, true
			}
		}
	}

	for l := line; l > 0; l-- {
		lineMap, ok := sm.TargetToSource[l-1]
		if !ok {
			continue
		}
		var best MapPos
		var bestCol uint32
		found := false
		for c, pos := range lineMap {
			if !found || c >= bestCol {
				bestCol = c
				best = pos
				found = true
			}
		}
		if found {
			return best, true
		}
	}

	return MapPos{}, false
}

// TargetPositionFromSource looks up the generated position for a source
// position, tolerating small column drift.
func (sm *SourceMap) TargetPositionFromSource(line, col uint32) (MapPos, bool) {
	lineMap, ok := sm.SourceToTarget[line]
	if !ok {
		return MapPos{}, false
	}

	if pos, ok := lineMap[col]; ok {
		return pos, true
	}

	for c := col; c > 0 && col-c < 5; c-- {
		if pos, ok := lineMap[c-1]; ok {
			return MapPos{Line: pos.Line, Column: pos.Column + (col - (c - 1))}, true
		}
	}

	return MapPos{}, false
}

// HasMappings returns true if the source map contains any mappings.
func (sm *SourceMap) HasMappings() bool {
	return len(sm.SourceToTarget) > 0 || len(sm.TargetToSource) > 0
}

// ToJSON serializes the source map.
func (sm *SourceMap) ToJSON() ([]byte, error) {
	return json.MarshalIndent(sm, "", "  ")
}

// FromJSON deserializes a source map.
func FromJSON(data []byte) (*SourceMap, error) {
	sm := &SourceMap{}
	if err := json.Unmarshal(data, sm); err != nil {
		return nil, err
	}
	return sm, nil
}
