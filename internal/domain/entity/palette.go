package entity

// Color — цвет отрисовки в RGB.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Palette задаёт цвет рамки для каждой метки класса.
// Метки вне таблицы получают цвет нормы.
type Palette struct {
	colors   map[string]Color
	fallback Color
}

// NewPalette создаёт палитру с запасным цветом для неизвестных меток.
func NewPalette(colors map[string]Color, fallback Color) *Palette {
	copied := make(map[string]Color, len(colors))
	for label, c := range colors {
		copied[label] = c
	}
	return &Palette{colors: copied, fallback: fallback}
}

// ColorFor возвращает цвет отрисовки для метки класса.
func (p *Palette) ColorFor(label string) Color {
	if c, ok := p.colors[label]; ok {
		return c
	}
	return p.fallback
}

// DefaultPalette повторяет цветовую схему производственной линии:
// зелёный для нормы, синий для гнили, красный для камней.
func DefaultPalette() *Palette {
	return NewPalette(map[string]Color{
		LabelOK:             {G: 255},
		LabelPodre:          {B: 255},
		LabelPedra:          {R: 255},
		LabelPedraNaBatata:  {R: 255},
		LabelBatataComPedra: {R: 255},
	}, Color{G: 255})
}
