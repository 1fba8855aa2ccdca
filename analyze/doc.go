// Package analyze profiles pages and documents ahead of conversion.
//
// A page is classified by what it carries: enough text to read directly,
// images only (a scan), both, or nothing. Document-level counts of those
// kinds drive the recommended conversion strategy, so a born-digital report
// takes the direct text path while a scanned book is routed through OCR.
//
// # Usage
//
//	analyzer := analyze.NewAnalyzer()
//	profile := analyzer.AnalyzeDocument(doc)
//	if profile.Strategy == analyze.StrategyOCRHeavy {
//	    // run pages through OCR before assembly
//	}
package analyze
