package printing

import "time"

// InvoicePDF is a rendered sales invoice. When object storage is configured
// the PDF is archived and DownloadURL points at a presigned copy.
type InvoicePDF struct {
	Filename    string    `json:"filename"`
	PageCount   int       `json:"pageCount"`
	SizeBytes   int       `json:"sizeBytes"`
	StorageKey  string    `json:"storageKey,omitempty"`
	DownloadURL string    `json:"downloadUrl,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt,omitzero"`
	Data        []byte    `json:"-"`
}

// Archived reports whether the PDF was uploaded to object storage
func (p *InvoicePDF) Archived() bool {
	return p.DownloadURL != ""
}
