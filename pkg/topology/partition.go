package topology

// Partition is a disjoint-set forest over the integers 0..n-1 with path
// compression and union by size. Part ids are element indices.
type Partition struct {
	parent []int
	size   []int
	parts  int
}

// NewPartition creates a partition of n singletons
func NewPartition(n int) *Partition {
	if n < 0 {
		n = 0
	}
	p := &Partition{
		parent: make([]int, n),
		size:   make([]int, n),
		parts:  n,
	}
	for i := range p.parent {
		p.parent[i] = i
		p.size[i] = 1
	}
	return p
}

// Len returns the number of elements
func (p *Partition) Len() int {
	return len(p.parent)
}

// Find returns the representative of the part containing i, or NotFound
// if i is out of range.
func (p *Partition) Find(i int) int {
	if i < 0 || i >= len(p.parent) {
		return NotFound
	}
	root := i
	for p.parent[root] != root {
		root = p.parent[root]
	}
	for i != root {
		next := p.parent[i]
		p.parent[i] = root
		i = next
	}
	return root
}

// Join merges the parts containing i and j and returns the representative
// of the merged part.
func (p *Partition) Join(i, j int) int {
	ri := p.Find(i)
	rj := p.Find(j)
	if ri < 0 || rj < 0 {
		return NotFound
	}
	if ri == rj {
		return ri
	}
	if p.size[ri] < p.size[rj] {
		ri, rj = rj, ri
	}
	p.parent[rj] = ri
	p.size[ri] += p.size[rj]
	p.parts--
	return ri
}

// NumberOfParts returns the current number of disjoint parts
func (p *Partition) NumberOfParts() int {
	return p.parts
}

// Size returns the number of elements in the part containing i
func (p *Partition) Size(i int) int {
	root := p.Find(i)
	if root < 0 {
		return 0
	}
	return p.size[root]
}

// Labels numbers the parts 0..NumberOfParts()-1 in ascending order of
// their smallest element and returns the label of every element.
func (p *Partition) Labels() []int {
	labels := make([]int, len(p.parent))
	rootLabel := make(map[int]int, p.parts)
	for i := range p.parent {
		root := p.Find(i)
		label, ok := rootLabel[root]
		if !ok {
			label = len(rootLabel)
			rootLabel[root] = label
		}
		labels[i] = label
	}
	return labels
}
