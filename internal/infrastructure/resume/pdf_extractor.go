// Package resume extrae el texto de las hojas de vida subidas en PDF.
package resume

import (
	"bytes"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

var _ ports.ResumeTextExtractor = (*PDFExtractor)(nil)

// PDFExtractor implementa ports.ResumeTextExtractor con ledongthuc/pdf.
type PDFExtractor struct {
	log *logger.Logger
}

// NewPDFExtractor construye el extractor. log puede ser nil.
func NewPDFExtractor(log *logger.Logger) *PDFExtractor {
	if log == nil {
		log = logger.Nop()
	}
	return &PDFExtractor{log: log}
}

// ExtractText concatena el texto de todas las páginas. Cualquier fallo devuelve "".
func (e *PDFExtractor) ExtractText(data []byte) (text string) {
	// la librería entra en pánico con algunos PDF malformados
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn().Interface("panic", r).Msg("resume: pánico al leer PDF")
			text = ""
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.log.Warn().Err(err).Int("bytes", len(data)).Msg("resume: PDF ilegible")
		return ""
	}
	plain, err := r.GetPlainText()
	if err != nil {
		e.log.Warn().Err(err).Msg("resume: no se pudo extraer texto")
		return ""
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		e.log.Warn().Err(err).Msg("resume: lectura de texto interrumpida")
		return ""
	}
	return strings.TrimSpace(buf.String())
}

// ExtractFile lee el PDF desde disco; un archivo inexistente también devuelve "".
func (e *PDFExtractor) ExtractFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		e.log.Warn().Err(err).Str("path", path).Msg("resume: no se pudo abrir el archivo")
		return ""
	}
	return e.ExtractText(data)
}
