package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"
)

type DocumentParserService interface {
	ExtractText(filename string, data []byte) (string, error)
	ExtractFile(path string) (*DocumentContent, error)
}

type DocumentContent struct {
	Text      string
	PageCount int
	FilePath  string
}

type documentParserService struct {
	log *zap.Logger
}

func NewDocumentParserService(log *zap.Logger) DocumentParserService {
	return &documentParserService{log: log}
}

// ExtractText dispatches on the file extension. Unknown extensions are read as PDF.
func (p *documentParserService) ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return string(data), nil
	case ".docx":
		return p.extractDocx(data)
	default:
		text, _, err := p.extractPDF(data)
		return text, err
	}
}

func (p *documentParserService) ExtractFile(path string) (*DocumentContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		text, err := p.ExtractText(path, data)
		if err != nil {
			return nil, err
		}
		return &DocumentContent{Text: text, PageCount: 1, FilePath: path}, nil
	}

	text, pages, err := p.extractPDF(data)
	if err != nil {
		return nil, err
	}

	return &DocumentContent{
		Text:      text,
		PageCount: pages,
		FilePath:  path,
	}, nil
}

// extractPDF concatenates page text in page order. Pages without extractable
// text are skipped; a panic inside the PDF reader is turned into an error.
func (p *documentParserService) extractPDF(data []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, pages, err = "", 0, fmt.Errorf("failed to read PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			p.log.Debug("skipping unreadable page", zap.Int("page", pageIndex), zap.Error(err))
			continue
		}

		textBuilder.WriteString(pageText)
	}

	return textBuilder.String(), totalPage, nil
}

func (p *documentParserService) extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	text, err := docxPlainText(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("failed to parse docx body: %w", err)
	}
	return text, nil
}

// docxPlainText walks WordprocessingML and keeps only run text. Runs of one
// paragraph are joined as-is, so a word split across runs stays whole.
func docxPlainText(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	dec.Strict = false

	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
