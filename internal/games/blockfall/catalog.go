package blockfall

// Kind identifies one of the seven catalog templates.
type Kind int

// Catalog order. A template's color index is its Kind plus one.
const (
	KindI Kind = iota
	KindT
	KindO
	KindZ
	KindS
	KindL
	KindJ

	KindCount = 7
)

// String returns the conventional single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindT:
		return "T"
	case KindO:
		return "O"
	case KindZ:
		return "Z"
	case KindS:
		return "S"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	default:
		return "?"
	}
}

// Color returns the palette index used by pieces of this kind.
func (k Kind) Color() Cell {
	return Cell(k + 1)
}

var templates = [KindCount]Shape{
	KindI: newShape(KindI.Color(), "####"),
	KindT: newShape(KindT.Color(), "###", ".#."),
	KindO: newShape(KindO.Color(), "##", "##"),
	KindZ: newShape(KindZ.Color(), "##.", ".##"),
	KindS: newShape(KindS.Color(), ".##", "##."),
	KindL: newShape(KindL.Color(), "###", "#.."),
	KindJ: newShape(KindJ.Color(), "###", "..#"),
}

// Template returns the spawn orientation of the given kind.
func Template(k Kind) Shape {
	return templates[k]
}

// Templates returns all templates in catalog order.
func Templates() []Shape {
	out := make([]Shape, KindCount)
	copy(out, templates[:])
	return out
}

// Source is the randomness the catalog draws from.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Catalog hands out templates chosen by an injected random source.
type Catalog struct {
	src Source
}

// NewCatalog creates a catalog drawing from src.
func NewCatalog(src Source) *Catalog {
	if src == nil {
		panic("blockfall: catalog needs a random source")
	}
	return &Catalog{src: src}
}

// PickRandom returns a template chosen uniformly at random.
// Draws are independent, so repeats are possible. Each call consumes
// exactly one draw from the source.
func (c *Catalog) PickRandom() Shape {
	return templates[c.src.Intn(KindCount)]
}
