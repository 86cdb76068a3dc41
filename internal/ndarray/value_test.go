package ndarray

// node is a minimal in-memory Value for tests.
type node struct {
	seq     bool
	items   []node
	num     float64
	numeric bool
}

func seq(items ...node) node { return node{seq: true, items: items} }

func num(f float64) node { return node{num: f, numeric: true} }

func text() node { return node{} }

func nums(fs ...float64) node {
	items := make([]node, len(fs))
	for i, f := range fs {
		items[i] = num(f)
	}
	return seq(items...)
}

func (n node) IsSequence() bool { return n.seq }
func (n node) Len() int { return len(n.items) }
func (n node) Index(i int) Value { return n.items[i] }
func (n node) Float64() (float64, bool) { return n.num, n.numeric }

// nest wraps v in depth single-element sequences.
func nest(v node, depth int) node {
	for i := 0; i < depth; i++ {
		v = seq(v)
	}
	return v
}

// spine builds depth levels of width elements where only element 0 nests
// further. Its first-element shape is width^depth, far more than it holds.
func spine(depth, width int) node {
	v := num(0)
	for i := 0; i < depth; i++ {
		items := make([]node, width)
		items[0] = v
		for j := 1; j < width; j++ {
			items[j] = num(float64(j))
		}
		v = seq(items...)
	}
	return v
}
