package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractPlainTextLengthFloor(t *testing.T) {
	// 10 decoded characters: rejected.
	_, err := ExtractTextFromFile("short.txt", "text/plain", []byte("0123456789"))
	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected *ExtractionError, got %v", err)
	}

	// Exactly 20 trimmed characters: not rejected on length grounds.
	exactly20 := "abcdefghijklmnopqrst"
	text, err := ExtractTextFromFile("ok.txt", "text/plain", []byte("  "+exactly20+"\n"))
	if err != nil {
		t.Fatalf("20-char document must pass: %v", err)
	}
	if !strings.Contains(text, exactly20) {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestExtractPlainTextRejectsBinary(t *testing.T) {
	_, err := ExtractTextFromFile("blob.txt", "text/plain", []byte{0xff, 0xfe, 0x00, 0x01})
	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected *ExtractionError for invalid UTF-8, got %v", err)
	}
}

func TestExtractFallsBackToExtension(t *testing.T) {
	// Browsers sometimes omit the MIME type for .pdf uploads; the garbage
	// payload must still be routed to the PDF decoder and fail there.
	_, err := ExtractTextFromFile("upload.pdf", "", []byte("this is not a pdf at all, just text"))
	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected *ExtractionError, got %v", err)
	}
	if !strings.Contains(extErr.Reason, "PDF") {
		t.Fatalf("expected PDF decode failure, got reason %q", extErr.Reason)
	}
}

func TestExtractRejectsBrokenDocx(t *testing.T) {
	_, err := ExtractTextFromFile("cv.docx", "application/octet-stream", []byte("not a zip archive"))
	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected *ExtractionError, got %v", err)
	}
}

func TestDetectKind(t *testing.T) {
	cases := []struct {
		name     string
		mimeType string
		fileName string
		want     fileKind
	}{
		{"declared pdf", "application/pdf", "cv.bin", kindPDF},
		{"declared docx", mimeDOCX, "cv", kindDOCX},
		{"mime with params", "application/pdf; charset=binary", "x", kindPDF},
		{"empty mime pdf ext", "", "cv.PDF", kindPDF},
		{"octet-stream docx ext", "application/octet-stream", "cv.docx", kindDOCX},
		{"zip docx ext", "application/zip", "cv.docx", kindDOCX},
		{"plain text", "text/plain", "notes.txt", kindText},
		{"unknown falls through to text", "application/octet-stream", "notes.dat", kindText},
	}
	for _, tc := range cases {
		if got := detectKind(tc.mimeType, tc.fileName); got != tc.want {
			t.Errorf("%s: detectKind(%q, %q) = %v, want %v", tc.name, tc.mimeType, tc.fileName, got, tc.want)
		}
	}
}

func TestStripDocxXML(t *testing.T) {
	raw := `<w:document><w:body><w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p><w:p><w:r><w:t>Go and SQL</w:t></w:r></w:p></w:body></w:document>`
	got := stripDocxXML(raw)
	if got != "Software Engineer\nGo and SQL" {
		t.Fatalf("unexpected stripped text %q", got)
	}
}

func TestStripDocxXMLKeepsTextBeforeMalformedMarkup(t *testing.T) {
	raw := `<w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p><w:p><w:r><w:t>broken`
	got := stripDocxXML(raw)
	if strings.Contains(got, "<") {
		t.Fatalf("expected no markup in output, got %q", got)
	}
	if !strings.Contains(got, "Software Engineer") {
		t.Fatalf("expected decoded text kept, got %q", got)
	}
}

func TestValidateUpload(t *testing.T) {
	if err := ValidateUpload("cv.pdf", "application/pdf", 1024); err != nil {
		t.Fatalf("pdf should be accepted: %v", err)
	}
	if err := ValidateUpload("cv", "application/msword", 1024); err != nil {
		t.Fatalf("declared msword should be accepted: %v", err)
	}
	if err := ValidateUpload("cv.docx", "", 1024); err != nil {
		t.Fatalf("docx extension should be accepted: %v", err)
	}

	if err := ValidateUpload("malware.exe", "application/octet-stream", 1024); err == nil {
		t.Fatal("expected rejection of disallowed type")
	}
	if err := ValidateUpload("cv.pdf", "application/pdf", MaxUploadBytes+1); err == nil {
		t.Fatal("expected rejection above size ceiling")
	}
	if err := ValidateUpload("cv.pdf", "application/pdf", MaxUploadBytes); err != nil {
		t.Fatalf("exactly at ceiling should pass: %v", err)
	}
}
