package repositories

import (
	"encoding/base64"
	"fmt"
)

func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

// dataURI inlines an image as a base64 data URI for card payloads.
func dataURI(mime string, data []byte) *string {
	s := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	return &s
}
