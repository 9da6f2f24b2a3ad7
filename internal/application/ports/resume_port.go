package ports

// ResumeTextExtractor extrae el texto plano de una hoja de vida PDF.
// Nunca falla: ante cualquier problema (PDF corrupto, codificación no soportada,
// pánico de la librería) devuelve "".
type ResumeTextExtractor interface {
	ExtractText(data []byte) string
}
