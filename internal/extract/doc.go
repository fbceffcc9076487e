// Package extract reads document text for classification. Plain text
// formats are read directly; PDFs go through the pdftotext executable.
package extract
