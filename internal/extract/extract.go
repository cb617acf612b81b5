package extract

import (
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	// minTextChars is the heuristic floor below which a document is treated
	// as having no usable text layer (e.g. a scanned-image PDF).
	minTextChars = 20
)

type fileKind int

const (
	kindText fileKind = iota
	kindPDF
	kindDOCX
)

// ExtractTextFromFile produces plain text from an uploaded file, dispatching
// by declared MIME type with file extension as the fallback when the type is
// empty or generic. Every path enforces the minimum-length policy; failures
// are *ExtractionError.
func ExtractTextFromFile(fileName, mimeType string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch detectKind(mimeType, fileName) {
	case kindPDF:
		text, err = extractPDF(data)
	case kindDOCX:
		text, err = extractDOCX(data)
	default:
		text, err = extractPlainText(data)
	}
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minTextChars {
		return "", extractionErr("document contains too little text to analyze", nil)
	}
	return text, nil
}

// detectKind prefers the declared MIME type; browsers sometimes omit or
// genericize it for .pdf/.docx uploads, so the extension decides then.
func detectKind(mimeType, fileName string) fileKind {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case mimePDF:
		return kindPDF
	case mimeDOCX:
		return kindDOCX
	case "", "application/octet-stream", "application/zip":
		switch strings.ToLower(filepath.Ext(fileName)) {
		case ".pdf":
			return kindPDF
		case ".docx":
			return kindDOCX
		}
	}
	return kindText
}

// extractPDF decodes each page's text layer in page order and concatenates
// with newline separators. Pages without a decodable text layer contribute
// nothing; a fully image-based PDF fails the length floor upstream.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", extractionErr("unreadable PDF", err)
	}
	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", extractionErr("unreadable DOCX", err)
	}
	defer doc.Close()
	return stripDocxXML(doc.Editable().GetContent()), nil
}

func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", extractionErr("file is not valid UTF-8 text", nil)
	}
	return string(data), nil
}

// stripDocxXML reduces WordprocessingML to its character data, inserting a
// newline at paragraph and line-break boundaries.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Keep whatever text was decoded before the malformed markup;
			// the length floor upstream rejects it if too little survived.
			break
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
