package port

// Frame — кадр видеопотока, независимый от реализации захвата.
type Frame interface {
	// Bounds возвращает ширину и высоту кадра в пикселях.
	Bounds() (width, height int)

	// Clone создаёт независимую копию кадра.
	Clone() Frame

	// EncodeJPEG кодирует кадр в JPEG.
	EncodeJPEG() ([]byte, error)

	// Close освобождает память кадра; безопасен при повторном вызове.
	Close()
}
