package iupac

import "github.com/OpenTraceLab/iupac/pkg/molecule"

const (
	isopropanol = "Propan-2-ol"
	isobutane   = "2-Methylpropane"
	dopamine    = "4-(2-Aminoethyl)benzene-1,2-diol"
	salbutamol  = "(RS)-4-[2-(tert-Butylamino)-1-hydroxyethyl]-2-(hydroxymethyl)phenol"
	caffeine    = "1,3,7-Trimethyl-3,7-dihydro-1H-purine-2,6-dione"
	adenine     = "9H-Purin-6-amine"
	thymine     = "5-Methylpyrimidine-2,4(1H,3H)-dione"
	cytosine    = "4-Aminopyrimidin-2(1H)-one"
	guanine     = "2-Amino-1,9-dihydro-6H-purin-6-one"
)

var (
	methane = Alkane(1)
	ethane  = Alkane(2)
	propane = Alkane(3)
	butane  = Alkane(4)
)

func hyd(h Hydride) Node            { return &HydrideNode{Hydride: h} }
func base(b Base) Node              { return &BaseNode{Base: b} }
func grp(n Node) Node               { return &GroupNode{Child: n} }
func unsat(degree int, n Node) Node { return &UnsaturatedNode{Degree: degree, Child: n} }
func sub(l molecule.Locant, group, parent Node) Node {
	return &SubstitutionNode{Locant: l, Group: group, Parent: parent}
}

var (
	num         = molecule.Number
	unspecified = molecule.Locant{}

	methyl  = grp(hyd(methane))
	hydro   = grp(base(Hydrogen))
	hydroxy = grp(base(Water))
	oxo     = grp(base(Oxygen))
	amino   = grp(base(Ammonia))
)
