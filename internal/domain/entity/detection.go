package entity

// Box — рамка детекции в пикселях: левый верхний и правый нижний углы.
type Box struct {
	X1 int // координата X левого верхнего угла
	Y1 int // координата Y левого верхнего угла
	X2 int // координата X правого нижнего угла
	Y2 int // координата Y правого нижнего угла
}

// Rescale переводит рамку из рабочего разрешения детектора в разрешение
// исходного кадра. Оси масштабируются независимо, координаты усекаются до
// целых пикселей. Рамка не обрезается по границам кадра.
func (b Box) Rescale(workW, workH, origW, origH int) Box {
	sx := float64(origW) / float64(workW)
	sy := float64(origH) / float64(workH)

	return Box{
		X1: int(float64(b.X1) * sx),
		Y1: int(float64(b.Y1) * sy),
		X2: int(float64(b.X2) * sx),
		Y2: int(float64(b.Y2) * sy),
	}
}

// Width возвращает ширину рамки в пикселях.
func (b Box) Width() int {
	return b.X2 - b.X1
}

// Height возвращает высоту рамки в пикселях.
func (b Box) Height() int {
	return b.Y2 - b.Y1
}

// Detection — один объект, найденный детектором на кадре.
type Detection struct {
	Box        Box     // рамка в рабочем разрешении детектора
	Label      string  // метка класса
	Confidence float64 // уверенность модели в диапазоне [0,1]
	TrackID    int64   // идентификатор трека, присвоенный детектором
	HasTrack   bool    // признак активного сопровождения объекта
}
