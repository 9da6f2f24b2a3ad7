package resume_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/infrastructure/resume"
)

// minimalPDF arma un PDF de una página con offsets de xref correctos.
func minimalPDF(text string) []byte {
	content := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

func TestExtractText_PDFValido(t *testing.T) {
	ex := resume.NewPDFExtractor(nil)
	text := ex.ExtractText(minimalPDF("Senior Go Developer"))
	assert.Contains(t, text, "Senior Go Developer")
}

func TestExtractText_BasuraDevuelveVacio(t *testing.T) {
	ex := resume.NewPDFExtractor(nil)
	assert.Equal(t, "", ex.ExtractText([]byte("esto no es un pdf, solo texto plano con suficiente longitud para pasar del chunk final de cien bytes del lector")))
	assert.Equal(t, "", ex.ExtractText(nil))
}

func TestExtractText_PDFTruncadoNoEntraEnPanico(t *testing.T) {
	ex := resume.NewPDFExtractor(nil)
	doc := minimalPDF("Hola")
	assert.NotPanics(t, func() {
		_ = ex.ExtractText(doc[:len(doc)/2])
	})
}

func TestExtractFile(t *testing.T) {
	ex := resume.NewPDFExtractor(nil)
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, minimalPDF("Resume"), 0o600))
	assert.Contains(t, ex.ExtractFile(path), "Resume")
	assert.Equal(t, "", ex.ExtractFile(filepath.Join(t.TempDir(), "no-existe.pdf")))
}
