package winged

// Edge is a winged edge. The left face runs Vertex1 -> Vertex2, the right
// face Vertex2 -> Vertex1.
type Edge struct {
	index uint32

	vertex1, vertex2    *Vertex
	leftFace, rightFace *Face

	leftPredecessor, leftSuccessor   *Edge
	rightPredecessor, rightSuccessor *Edge
}

func (e *Edge) Index() uint32 { return e.index }

// OptionalIndex returns None for a nil edge.
func (e *Edge) OptionalIndex() OptionalIndex { return IndexOf(e) }

func (e *Edge) Vertex1() *Vertex            { return e.vertex1 }
func (e *Edge) Vertex2() *Vertex            { return e.vertex2 }
func (e *Edge) LeftFace() *Face             { return e.leftFace }
func (e *Edge) RightFace() *Face            { return e.rightFace }
func (e *Edge) LeftPredecessor() *Edge      { return e.leftPredecessor }
func (e *Edge) LeftSuccessor() *Edge        { return e.leftSuccessor }
func (e *Edge) RightPredecessor() *Edge     { return e.rightPredecessor }
func (e *Edge) RightSuccessor() *Edge       { return e.rightSuccessor }
func (e *Edge) SetVertex1(v *Vertex)        { e.vertex1 = v }
func (e *Edge) SetVertex2(v *Vertex)        { e.vertex2 = v }
func (e *Edge) SetLeftFace(f *Face)         { e.leftFace = f }
func (e *Edge) SetRightFace(f *Face)        { e.rightFace = f }
func (e *Edge) SetLeftPredecessor(p *Edge)  { e.leftPredecessor = p }
func (e *Edge) SetLeftSuccessor(s *Edge)    { e.leftSuccessor = s }
func (e *Edge) SetRightPredecessor(p *Edge) { e.rightPredecessor = p }
func (e *Edge) SetRightSuccessor(s *Edge)   { e.rightSuccessor = s }

func (e *Edge) IsLeftFace(f *Face) bool  { return e.leftFace == f }
func (e *Edge) IsRightFace(f *Face) bool { return e.rightFace == f }

// IsBoundary reports whether the edge has only one face.
func (e *Edge) IsBoundary() bool {
	return e.leftFace == nil || e.rightFace == nil
}

// FirstVertex is the vertex at which f enters e.
func (e *Edge) FirstVertex(f *Face) *Vertex {
	if e.IsLeftFace(f) {
		return e.vertex1
	}
	return e.vertex2
}

// SecondVertex is the vertex at which f leaves e.
func (e *Edge) SecondVertex(f *Face) *Vertex {
	if e.IsLeftFace(f) {
		return e.vertex2
	}
	return e.vertex1
}

func (e *Edge) Successor(f *Face) *Edge {
	if e.IsLeftFace(f) {
		return e.leftSuccessor
	}
	return e.rightSuccessor
}

func (e *Edge) Predecessor(f *Face) *Edge {
	if e.IsLeftFace(f) {
		return e.leftPredecessor
	}
	return e.rightPredecessor
}

func (e *Edge) SetSuccessor(f *Face, s *Edge) {
	if e.IsLeftFace(f) {
		e.leftSuccessor = s
	} else {
		e.rightSuccessor = s
	}
}

func (e *Edge) SetPredecessor(f *Face, p *Edge) {
	if e.IsLeftFace(f) {
		e.leftPredecessor = p
	} else {
		e.rightPredecessor = p
	}
}

func (e *Edge) OtherVertex(v *Vertex) *Vertex {
	if e.vertex1 == v {
		return e.vertex2
	}
	return e.vertex1
}

func (e *Edge) OtherFace(f *Face) *Face {
	if e.leftFace == f {
		return e.rightFace
	}
	return e.leftFace
}

func (e *Edge) HasVertex(v *Vertex) bool {
	return e.vertex1 == v || e.vertex2 == v
}

// leavingFace is the face that traverses e starting at v.
func (e *Edge) leavingFace(v *Vertex) *Face {
	if e.vertex1 == v {
		return e.leftFace
	}
	return e.rightFace
}

// arrivingFace is the face that traverses e ending at v.
func (e *Edge) arrivingFace(v *Vertex) *Face {
	if e.vertex2 == v {
		return e.leftFace
	}
	return e.rightFace
}
