// Package printing renders printable documents to PDF.
//
// HTML is produced from embedded html/template pages by TemplateEngine and
// converted to PDF by a PDFRenderer. ChromedpRenderer drives a headless
// Chrome (local or remote) through the DevTools protocol; DisabledRenderer
// stands in when printing is switched off.
package printing
