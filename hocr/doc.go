// Package hocr parses hOCR, the HTML-based format OCR engines use to
// report recognized text with positions.
//
// The parser walks the element hierarchy Tesseract emits, page (ocr_page),
// content area (ocr_carea), paragraph (ocr_par), line (ocr_line and its
// header, caption, and float variants), and word (ocrx_word), reading the
// bbox, x_size, x_wconf, and ppageno properties from each element's title
// attribute. Parsing is tolerant: elements with malformed properties keep
// their zero values rather than failing the document.
//
// A parsed page converts to a model.Page whose blocks are the recognized
// lines, so OCR output feeds the same classification and assembly pipeline
// as embedded text. Header and caption line classes carry over as roles.
package hocr
