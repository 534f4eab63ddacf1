package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// extractDOCX pulls visible text out of a Word document. A .docx file is a
// zip archive; the body lives in word/document.xml. Paragraphs become lines
// and table rows become "cell | cell" lines, matching how the documents read
// in practice.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", err)
		}
		defer func() { _ = rc.Close() }()
		return readDocumentXML(rc)
	}

	return "", errors.New("docx archive has no word/document.xml")
}

// readDocumentXML walks the WordprocessingML token stream. Only the text
// runs (w:t) carry content; paragraph (w:p), table cell (w:tc), and table
// row (w:tr) boundaries control line structure.
func readDocumentXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var (
		out       strings.Builder
		cell      strings.Builder
		row       []string
		inText    bool
		cellDepth int
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tc":
				cellDepth++
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "tc":
				cellDepth--
				row = append(row, strings.TrimSpace(cell.String()))
				cell.Reset()
			case "tr":
				out.WriteString(strings.Join(row, " | "))
				out.WriteByte('\n')
				row = nil
			case "p":
				if cellDepth > 0 {
					cell.WriteByte(' ')
				} else {
					out.WriteByte('\n')
				}
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if cellDepth > 0 {
				cell.Write(t)
			} else {
				out.Write(t)
			}
		}
	}

	return strings.TrimRight(out.String(), "\n"), nil
}
