package utils

import (
	qrcode "github.com/skip2/go-qrcode"
)

// TableQRPNG renders the QR image a guest scans at a table. url must be
// the full public menu link including the table token.
func TableQRPNG(url string, size int) ([]byte, error) {
	if size <= 0 {
		size = 512
	}
	return qrcode.Encode(url, qrcode.Medium, size)
}
