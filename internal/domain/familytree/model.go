package familytree

// FamilyTreeNode es la vista mínima de un reproductor dentro del árbol. Un
// nodo sin ID es un código que no resolvió a ningún registro: se muestra
// igual, pero no linkea a nada y no expande ancestros propios.
type FamilyTreeNode struct {
	ID           string           `json:"id,omitempty"`
	Code         string           `json:"code"`
	ThumbnailURL string           `json:"thumbnail_url,omitempty"`
	Siblings     []FamilyTreeNode `json:"siblings,omitempty"`
}

// Resolved informa si el nodo corresponde a un registro real del catálogo.
func (n *FamilyTreeNode) Resolved() bool { return n != nil && n.ID != "" }

// Ancestors tiene exactamente 14 posiciones con nombre, tres generaciones
// hacia arriba. La forma es fija: un slot sin dato viaja como null, nunca
// desaparece ni se agregan niveles extra.
type Ancestors struct {
	Father *FamilyTreeNode `json:"father"`
	Mother *FamilyTreeNode `json:"mother"`

	PaternalGrandfather *FamilyTreeNode `json:"paternal_grandfather"`
	PaternalGrandmother *FamilyTreeNode `json:"paternal_grandmother"`
	MaternalGrandfather *FamilyTreeNode `json:"maternal_grandfather"`
	MaternalGrandmother *FamilyTreeNode `json:"maternal_grandmother"`

	PaternalPaternalGreatGrandfather *FamilyTreeNode `json:"paternal_paternal_great_grandfather"`
	PaternalPaternalGreatGrandmother *FamilyTreeNode `json:"paternal_paternal_great_grandmother"`
	PaternalMaternalGreatGrandfather *FamilyTreeNode `json:"paternal_maternal_great_grandfather"`
	PaternalMaternalGreatGrandmother *FamilyTreeNode `json:"paternal_maternal_great_grandmother"`
	MaternalPaternalGreatGrandfather *FamilyTreeNode `json:"maternal_paternal_great_grandfather"`
	MaternalPaternalGreatGrandmother *FamilyTreeNode `json:"maternal_paternal_great_grandmother"`
	MaternalMaternalGreatGrandfather *FamilyTreeNode `json:"maternal_maternal_great_grandfather"`
	MaternalMaternalGreatGrandmother *FamilyTreeNode `json:"maternal_maternal_great_grandmother"`
}

// Mate es la pareja actual de una hembra. Node nil con Code presente
// significa que el código declarado no resolvió a ningún registro; la UI lo
// muestra como texto plano.
type Mate struct {
	Code string          `json:"code"`
	Node *FamilyTreeNode `json:"node"`
}

type FamilyTree struct {
	Current     FamilyTreeNode   `json:"current"`
	Ancestors   Ancestors        `json:"ancestors"`
	Siblings    []FamilyTreeNode `json:"siblings"`
	Offspring   []FamilyTreeNode `json:"offspring"`
	CurrentMate *Mate            `json:"current_mate"`
}
