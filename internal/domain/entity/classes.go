package entity

// Метки классов модели инспекции.
const (
	LabelOK             = "OK"
	LabelPodre          = "PODRE"
	LabelPedra          = "PEDRA"
	LabelPedraNaBatata  = "PEDRA-NA-BATATA"
	LabelBatataComPedra = "BATATA-COM-PEDRA"
)

// ClassSet — фиксированный набор меток классов.
type ClassSet map[string]struct{}

// NewClassSet создаёт набор из перечисленных меток.
func NewClassSet(labels ...string) ClassSet {
	set := make(ClassSet, len(labels))
	for _, label := range labels {
		set[label] = struct{}{}
	}
	return set
}

// Contains проверяет принадлежность метки набору.
func (s ClassSet) Contains(label string) bool {
	_, ok := s[label]
	return ok
}

// DefaultClassNames возвращает метки классов модели в порядке обучения.
func DefaultClassNames() []string {
	return []string{LabelOK, LabelPodre, LabelPedra, LabelPedraNaBatata, LabelBatataComPedra}
}

// DefaultFlaggedClasses возвращает классы, требующие сохранения снимка.
func DefaultFlaggedClasses() ClassSet {
	return NewClassSet(LabelPedra, LabelPedraNaBatata, LabelBatataComPedra)
}
